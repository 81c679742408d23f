// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkcheck

import (
	_ "embed"
	"fmt"

	"git.sr.ht/~shulhan/linkcheck/checker"
)

// Version of linkcheck program and module.
var Version = checker.Version

// GoEmbedReadme embed the README for showing the usage of program.
//
//go:embed README
var GoEmbedReadme string

// Check create new [checker.Checker] for target and run the check
// immediately.
func Check(target checker.Target, opts checker.Options) (
	chk *checker.Checker, err error,
) {
	var logp = `Check`

	chk, err = checker.New(target, opts)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}
	chk.Check()
	return chk, nil
}
