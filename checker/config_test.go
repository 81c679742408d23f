// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

import (
	"testing"
	"time"

	"git.sr.ht/~shulhan/pakakeh.go/lib/test"
)

func TestLoadConfig(t *testing.T) {
	var (
		cfg *Config
		err error
	)

	cfg, err = LoadConfig(`testdata/linkcheck.conf`)
	if err != nil {
		t.Fatal(err)
	}

	var expConfig = &Config{
		UserAgent:                    `my-spider/1.0`,
		MsgTimeout:                   `Zeitüberschreitung`,
		MsgGenericNetwork:            `Netzwerkfehler`,
		MsgRedirectPermanently:       `Umgezogen`,
		OpenTimeout:                  2 * time.Second,
		ReadTimeout:                  3 * time.Second,
		IgnoreTrailingSlashRedirects: true,
		Insecure:                     true,
	}
	test.Assert(t, `LoadConfig`, expConfig, cfg)

	var expMessages = Messages{
		KindTimeout:             `Zeitüberschreitung`,
		KindGenericNetwork:      `Netzwerkfehler`,
		KindRedirectPermanently: `Umgezogen`,
	}
	test.Assert(t, `Messages`, expMessages, cfg.Messages())

	var opts = cfg.Options()
	test.Assert(t, `Options.UserAgent`, `my-spider/1.0`, opts.UserAgent)
	test.Assert(t, `Options.OpenTimeout`, 2*time.Second, opts.OpenTimeout)
	test.Assert(t, `Options.ReadTimeout`, 3*time.Second, opts.ReadTimeout)
	test.Assert(t, `Options.Insecure`, true, opts.Insecure)
	test.Assert(t, `Options.Formatter`, expMessages, opts.Formatter.(Messages))
}

func TestLoadConfig_notExist(t *testing.T) {
	cfg, err := LoadConfig(`testdata/notexist.conf`)
	if err != nil {
		t.Fatal(err)
	}
	test.Assert(t, `LoadConfig`, &Config{}, cfg)
	test.Assert(t, `Messages`, Messages{}, cfg.Messages())
}

func TestConfig_Apply(t *testing.T) {
	t.Cleanup(func() {
		Configure(func(policy *Policy) {
			*policy = Policy{}
		})
	})

	var cfg = &Config{
		Ignore302Redirects: true,
	}
	cfg.Apply()

	test.Assert(t, `DefaultPolicy`, Policy{Ignore302Redirects: true},
		DefaultPolicy())
}
