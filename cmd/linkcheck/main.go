// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"git.sr.ht/~shulhan/linkcheck"
	"git.sr.ht/~shulhan/linkcheck/checker"
	"git.sr.ht/~shulhan/linkcheck/internal"
)

func main() {
	log.SetFlags(0)

	var (
		optUserAgent           string
		optOpenTimeout         time.Duration
		optReadTimeout         time.Duration
		optIgnoreTrailingSlash bool
		optIgnore302           bool
		optInsecure            bool
		optIsVerbose           bool
	)

	flag.BoolVar(&optIgnoreTrailingSlash, `ignore-trailing-slash`, false,
		`Consider permanent redirect that only add trailing slash as ok.`)

	flag.BoolVar(&optIgnore302, `ignore-302`, false,
		`Consider temporary redirect as ok.`)

	flag.BoolVar(&optInsecure, `insecure`, false,
		`Do not verify the server certificate.`)

	flag.DurationVar(&optOpenTimeout, `open-timeout`, 0,
		`Timeout for opening connection (default 5s).`)

	flag.DurationVar(&optReadTimeout, `read-timeout`, 0,
		`Timeout for waiting the response (default 10s).`)

	flag.StringVar(&optUserAgent, `user-agent`, ``,
		`Set the User-Agent header.`)

	flag.BoolVar(&optIsVerbose, `verbose`, false,
		`Print additional information while running.`)

	flag.Parse()

	var cmd = flag.Arg(0)
	cmd = strings.ToLower(cmd)
	switch cmd {
	case `check`:
		var url = flag.Arg(1)
		if url == `` {
			log.Printf(`Missing argument URL to be checked.`)
			goto invalid_command
		}

		var cfg = loadConfig()
		cfg.Apply()

		var opts = cfg.Options()
		opts.IgnoreTrailingSlashRedirects = optIgnoreTrailingSlash
		opts.Ignore302Redirects = optIgnore302
		opts.Insecure = opts.Insecure || optInsecure
		opts.IsVerbose = optIsVerbose
		if optOpenTimeout != 0 {
			opts.OpenTimeout = optOpenTimeout
		}
		if optReadTimeout != 0 {
			opts.ReadTimeout = optReadTimeout
		}
		if optUserAgent != `` {
			opts.UserAgent = optUserAgent
		}

		var (
			chk *checker.Checker
			err error
		)
		chk, err = linkcheck.Check(checker.URL(url), opts)
		if err != nil {
			log.Fatal(err.Error())
		}

		var resultJson []byte
		resultJson, err = json.MarshalIndent(chk.Result(), ``, `  `)
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%s\n", resultJson)
		if !chk.Ok() {
			os.Exit(1)
		}
		return

	case `help`:
		log.Println(linkcheck.GoEmbedReadme)
		return

	case `version`:
		log.Println(linkcheck.Version)
		return

	default:
		log.Printf(`Missing or invalid command %q`, cmd)
	}

invalid_command:
	log.Printf(`Run "linkcheck help" for usage.`)
	os.Exit(1)
}

func loadConfig() (cfg *checker.Config) {
	var (
		file string
		err  error
	)
	file, err = internal.ConfigFile()
	if err != nil {
		log.Fatal(err.Error())
	}
	cfg, err = checker.LoadConfig(file)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}
