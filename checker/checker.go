// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

// Package checker check whether a single link is reachable.
//
// The URL host may contains internationalized domain name, which
// converted into ASCII compatible encoding before sending the request.
// The status of checked link is either the HTTP status code, or the
// formatted message for permanent redirect, timeout, and network error.
package checker

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Version of checker package.
const Version = `0.1.0`

// Target is anything that can provide an URL to be checked.
type Target interface {
	URL() string
}

// URL is the [Target] for plain URL string.
type URL string

// URL return itself as string.
func (u URL) URL() string {
	return string(u)
}

// Request store the immutable parameters of a check.
type Request struct {
	URL         string
	Policy      Policy
	OpenTimeout time.Duration
	ReadTimeout time.Duration
}

// MarshalJSON encode the Request with timeouts in human readable form,
// for example "5s".
func (req Request) MarshalJSON() ([]byte, error) {
	var jsonReq = struct {
		URL         string `json:"url"`
		Policy      Policy `json:"policy"`
		OpenTimeout string `json:"open_timeout"`
		ReadTimeout string `json:"read_timeout"`
	}{
		URL:         req.URL,
		Policy:      req.Policy,
		OpenTimeout: req.OpenTimeout.String(),
		ReadTimeout: req.ReadTimeout.String(),
	}
	return json.Marshal(jsonReq)
}

// Checker check the status of one web address.
// Checker is not safe for concurrent use, create one Checker for each
// link.
type Checker struct {
	target  Target
	uri     *NormalizedURL
	exec    Executor
	result  *Result
	opts    Options
	request Request
}

// New create new Checker for target.
// It return [*MalformedURLError] if the target URL is not an absolute
// "http" or "https" URL.
//
// The process wide default policy, see [Configure], is read once here.
// A flag is enabled if its set either in opts or in the default policy.
func New(target Target, opts Options) (chk *Checker, err error) {
	var logp = `New`

	if target == nil {
		return nil, fmt.Errorf(`%s: nil target`, logp)
	}

	err = opts.init()
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	chk = &Checker{
		target: target,
		opts:   opts,
		request: Request{
			URL:         target.URL(),
			Policy:      opts.policy().merge(DefaultPolicy()),
			OpenTimeout: opts.OpenTimeout,
			ReadTimeout: opts.ReadTimeout,
		},
	}

	_, err = chk.URI()
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, logp, err)
	}

	chk.exec = opts.Executor
	if chk.exec == nil {
		chk.exec = newHTTPExecutor(chk.opts)
	}
	return chk, nil
}

// Target return the target being checked.
func (chk *Checker) Target() Target {
	return chk.target
}

// Request return the parameters used by Checker.
func (chk *Checker) Request() Request {
	return chk.request
}

// URI return the normalized URL.
// The URL is normalized once and reused on the next call.
func (chk *Checker) URI() (nu *NormalizedURL, err error) {
	if chk.uri != nil {
		return chk.uri, nil
	}
	chk.uri, err = Normalize(chk.request.URL)
	if err != nil {
		return nil, err
	}
	return chk.uri, nil
}

// Check send the request to the URL and return the result.
// Any network error is reported inside the [Result.Status], not as error.
func (chk *Checker) Check() (result *Result) {
	var raw = chk.exec.Execute(chk.uri)
	var outcome = Classify(raw, chk.uri, chk.opts.Formatter)

	result = &Result{
		Request: chk.request,
		Outcome: outcome,
		Status:  outcome.Status,
		Ok:      chk.request.Policy.IsOk(outcome),
	}
	chk.result = result
	return result
}

// Status return the status from the last Check, or empty string if no
// check has been run.
func (chk *Checker) Status() string {
	if chk.result == nil {
		return ``
	}
	return chk.result.Status
}

// Ok return true if the last Check is considered ok by the policy.
// It always return false if no check has been run.
func (chk *Checker) Ok() bool {
	if chk.result == nil {
		return false
	}
	return chk.result.Ok
}

// Result return the result of last Check, or nil if no check has been
// run.
func (chk *Checker) Result() *Result {
	return chk.result
}

// IsMalformedURL return true if err is caused by malformed URL.
func IsMalformedURL(err error) bool {
	var errUrl *MalformedURLError
	return errors.As(err, &errUrl)
}
