// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

import (
	"fmt"
	"os"
	"time"

	"git.sr.ht/~shulhan/pakakeh.go/lib/ini"
)

// Config define the content of configuration file, in the INI format,
//
//	[linkcheck]
//	ignore-trailing-slash-redirects = true
//	ignore-302-redirects = false
//	insecure = false
//	open-timeout = 5s
//	read-timeout = 10s
//	user-agent = my-spider/1.0
//
//	[message]
//	timeout = Zeitüberschreitung
//	generic-network = Netzwerkfehler
//	redirect-permanently = Umgezogen
type Config struct {
	UserAgent string `ini:"linkcheck::user-agent"`

	MsgTimeout             string `ini:"message::timeout"`
	MsgGenericNetwork      string `ini:"message::generic-network"`
	MsgRedirectPermanently string `ini:"message::redirect-permanently"`

	OpenTimeout time.Duration `ini:"linkcheck::open-timeout"`
	ReadTimeout time.Duration `ini:"linkcheck::read-timeout"`

	IgnoreTrailingSlashRedirects bool `ini:"linkcheck::ignore-trailing-slash-redirects"`
	Ignore302Redirects           bool `ini:"linkcheck::ignore-302-redirects"`
	Insecure                     bool `ini:"linkcheck::insecure"`
}

// ParseConfig parse the configuration from raw INI content.
func ParseConfig(raw []byte) (cfg *Config, err error) {
	var logp = `ParseConfig`

	cfg = &Config{}
	err = ini.Unmarshal(raw, cfg)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}
	if cfg.OpenTimeout < 0 || cfg.ReadTimeout < 0 {
		return nil, fmt.Errorf(`%s: negative timeout`, logp)
	}
	return cfg, nil
}

// LoadConfig load the configuration from file.
// If the file does not exist it return empty Config.
func LoadConfig(file string) (cfg *Config, err error) {
	var logp = `LoadConfig`

	var raw []byte
	raw, err = os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	cfg, err = ParseConfig(raw)
	if err != nil {
		return nil, fmt.Errorf(`%s: %s: %w`, logp, file, err)
	}
	return cfg, nil
}

// Apply set the process wide default policy from the configuration.
// It should be called once at startup, before any check begin.
func (cfg *Config) Apply() {
	Configure(func(policy *Policy) {
		policy.IgnoreTrailingSlashRedirects = cfg.IgnoreTrailingSlashRedirects
		policy.Ignore302Redirects = cfg.Ignore302Redirects
	})
}

// Messages return the message phrases from configuration.
func (cfg *Config) Messages() Messages {
	var msgs = Messages{}
	if cfg.MsgTimeout != `` {
		msgs[KindTimeout] = cfg.MsgTimeout
	}
	if cfg.MsgGenericNetwork != `` {
		msgs[KindGenericNetwork] = cfg.MsgGenericNetwork
	}
	if cfg.MsgRedirectPermanently != `` {
		msgs[KindRedirectPermanently] = cfg.MsgRedirectPermanently
	}
	return msgs
}

// Options create new Options based on the configuration.
// The redirect flags are not set here, since they are applied as process
// wide default by Apply.
func (cfg *Config) Options() Options {
	return Options{
		Formatter:   cfg.Messages(),
		UserAgent:   cfg.UserAgent,
		OpenTimeout: cfg.OpenTimeout,
		ReadTimeout: cfg.ReadTimeout,
		Insecure:    cfg.Insecure,
	}
}
