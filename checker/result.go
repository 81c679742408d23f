// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

// Result store the result of checking a link.
type Result struct {
	Request Request `json:"request"`

	// Status is either the HTTP status code, like "200", or formatted
	// message, like "Moved permanently (http://example.com/)".
	Status string `json:"status"`

	Outcome Outcome `json:"outcome"`

	Ok bool `json:"ok"`
}
