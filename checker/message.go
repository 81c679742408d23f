// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

import "fmt"

// MessageKind define the kind of status message.
type MessageKind string

// List of message kind.
const (
	KindTimeout             MessageKind = `timeout`
	KindGenericNetwork      MessageKind = `generic_network`
	KindRedirectPermanently MessageKind = `redirect_permanently`
)

var defaultPhrases = map[MessageKind]string{
	KindTimeout:             `Timeout`,
	KindGenericNetwork:      `Generic network error`,
	KindRedirectPermanently: `Moved permanently`,
}

// Formatter convert the message kind and its detail into human readable
// status.
type Formatter interface {
	Format(kind MessageKind, detail string) string
}

// Messages is the default [Formatter].
// Each key override the English phrase for that kind, for example to
// provide localized message.
type Messages map[MessageKind]string

// Format return the phrase for kind followed by detail inside
// parentheses, for example "Timeout (execution expired)".
func (msgs Messages) Format(kind MessageKind, detail string) string {
	var phrase = msgs[kind]
	if phrase == `` {
		phrase = defaultPhrases[kind]
	}
	if phrase == `` {
		phrase = string(kind)
	}
	return fmt.Sprintf(`%s (%s)`, phrase, detail)
}
