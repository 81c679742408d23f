// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

import (
	"fmt"
	"time"
)

// List of default values for [Options].
const (
	DefaultOpenTimeout = 5 * time.Second
	DefaultReadTimeout = 10 * time.Second
)

// DefaultUserAgent is the User-Agent header sent when
// [Options.UserAgent] is empty.
const DefaultUserAgent = `linkcheck/` + Version +
	` (+https://git.sr.ht/~shulhan/linkcheck)`

// Options define the options for checking a link.
type Options struct {
	// Formatter convert the timeout, network error, and permanent
	// redirect into status message.
	// Default to [Messages] with English phrases.
	Formatter Formatter

	// Executor send the request.
	// Default to executor that use [http.Client].
	Executor Executor

	// UserAgent set the User-Agent header on request.
	// Default to [DefaultUserAgent].
	UserAgent string

	// OpenTimeout is the maximum duration for establishing the
	// connection, including TLS handshake.
	// Default to [DefaultOpenTimeout].
	OpenTimeout time.Duration

	// ReadTimeout is the maximum duration waiting for the response
	// after the request has been sent.
	// Default to [DefaultReadTimeout].
	ReadTimeout time.Duration

	// IgnoreTrailingSlashRedirects ignore permanent redirect to the same
	// URL with only added trailing slash.
	IgnoreTrailingSlashRedirects bool

	// Ignore302Redirects ignore temporary redirects.
	Ignore302Redirects bool

	// Insecure do not verify the server certificate on HTTPS.
	Insecure bool

	IsVerbose bool
}

func (opts *Options) init() (err error) {
	var logp = `Options`

	if opts.OpenTimeout < 0 {
		return fmt.Errorf(`%s: invalid open timeout %s`, logp, opts.OpenTimeout)
	}
	if opts.ReadTimeout < 0 {
		return fmt.Errorf(`%s: invalid read timeout %s`, logp, opts.ReadTimeout)
	}
	if opts.OpenTimeout == 0 {
		opts.OpenTimeout = DefaultOpenTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = DefaultReadTimeout
	}
	if opts.UserAgent == `` {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Formatter == nil {
		opts.Formatter = Messages(nil)
	}
	return nil
}

func (opts *Options) policy() Policy {
	return Policy{
		IgnoreTrailingSlashRedirects: opts.IgnoreTrailingSlashRedirects,
		Ignore302Redirects:           opts.Ignore302Redirects,
	}
}
