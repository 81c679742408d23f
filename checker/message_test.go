// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

import (
	"testing"

	"git.sr.ht/~shulhan/pakakeh.go/lib/test"
)

func TestMessages_Format(t *testing.T) {
	type testCase struct {
		msgs   Messages
		kind   MessageKind
		detail string
		exp    string
	}

	var listCase = []testCase{{
		kind:   KindTimeout,
		detail: `execution expired`,
		exp:    `Timeout (execution expired)`,
	}, {
		kind:   KindGenericNetwork,
		detail: `connection refused`,
		exp:    `Generic network error (connection refused)`,
	}, {
		kind:   KindRedirectPermanently,
		detail: `http://example.com/`,
		exp:    `Moved permanently (http://example.com/)`,
	}, {
		msgs: Messages{
			KindTimeout: `Zeitüberschreitung`,
		},
		kind:   KindTimeout,
		detail: `Dauert zu lange`,
		exp:    `Zeitüberschreitung (Dauert zu lange)`,
	}, {
		// Empty override fallback to the default phrase.
		msgs: Messages{
			KindGenericNetwork: ``,
		},
		kind:   KindGenericNetwork,
		detail: `Irgendwie kaputt`,
		exp:    `Generic network error (Irgendwie kaputt)`,
	}, {
		kind:   MessageKind(`unknown`),
		detail: `x`,
		exp:    `unknown (x)`,
	}}

	for _, tcase := range listCase {
		var got = tcase.msgs.Format(tcase.kind, tcase.detail)
		test.Assert(t, tcase.exp, tcase.exp, got)
	}
}
