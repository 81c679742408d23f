// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

import (
	"net/http"
	"strconv"
)

// OutcomeKind define the variant of [Outcome].
type OutcomeKind int

// List of outcome kind.
const (
	OutcomeStatus OutcomeKind = iota
	OutcomePermanentRedirect
	OutcomeTimedOut
	OutcomeNetworkError
)

var outcomeKindNames = []string{
	OutcomeStatus:            `status`,
	OutcomePermanentRedirect: `permanent_redirect`,
	OutcomeTimedOut:          `timed_out`,
	OutcomeNetworkError:      `network_error`,
}

func (kind OutcomeKind) String() string {
	if int(kind) < 0 || int(kind) >= len(outcomeKindNames) {
		return `unknown`
	}
	return outcomeKindNames[kind]
}

// MarshalText encode the kind using its name.
func (kind OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

// Outcome store the classified result of single check.
// Only fields related to its Kind are set.
type Outcome struct {
	// Code is the HTTP status code, as returned by server, for
	// OutcomeStatus.
	Code string `json:"code,omitempty"`

	// Location is the redirect target for OutcomePermanentRedirect.
	Location string `json:"location,omitempty"`

	// Detail is the error message for OutcomeTimedOut and
	// OutcomeNetworkError.
	Detail string `json:"detail,omitempty"`

	// Status is the value that displayed to user: the status code or
	// formatted message.
	Status string `json:"status"`

	Kind OutcomeKind `json:"kind"`

	// TrailingSlashOnly is true if the permanent redirect Location is
	// equal to the requested URL with added "/".
	TrailingSlashOnly bool `json:"trailing_slash_only,omitempty"`
}

// Classify the raw outcome from [Executor] into [Outcome].
func Classify(raw RawOutcome, nu *NormalizedURL, fmtr Formatter) (outcome Outcome) {
	if fmtr == nil {
		fmtr = Messages(nil)
	}

	switch raw.Kind {
	case RawTimedOut:
		outcome.Kind = OutcomeTimedOut
		outcome.Detail = raw.Message
		outcome.Status = fmtr.Format(KindTimeout, raw.Message)
		return outcome

	case RawFailed:
		outcome.Kind = OutcomeNetworkError
		outcome.Detail = raw.Message
		outcome.Status = fmtr.Format(KindGenericNetwork, raw.Message)
		return outcome
	}

	if raw.Code == strconv.Itoa(http.StatusMovedPermanently) {
		var location = raw.Header.Get(`Location`)
		outcome.Kind = OutcomePermanentRedirect
		outcome.Location = location
		if nu != nil {
			outcome.TrailingSlashOnly = nu.String()+`/` == location
		}
		outcome.Status = fmtr.Format(KindRedirectPermanently, location)
		return outcome
	}

	outcome.Kind = OutcomeStatus
	outcome.Code = raw.Code
	outcome.Status = raw.Code
	return outcome
}
