// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

import (
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
)

// Policy define which non 200 outcome still considered as ok.
type Policy struct {
	// IgnoreTrailingSlashRedirects consider permanent redirect to the
	// same URL with added trailing slash as ok.
	IgnoreTrailingSlashRedirects bool `json:"ignore_trailing_slash_redirects"`

	// Ignore302Redirects consider temporary redirect as ok.
	Ignore302Redirects bool `json:"ignore_302_redirects"`
}

var (
	defaultPolicy    atomic.Pointer[Policy]
	defaultPolicyMtx sync.Mutex
)

func init() {
	defaultPolicy.Store(&Policy{})
}

// Configure set the process wide default policy.
// It should be called once, before any checks begin.
// Checker that has been created keep the policy at the time its created.
// A nil fn does nothing.
func Configure(fn func(policy *Policy)) {
	if fn == nil {
		return
	}
	defaultPolicyMtx.Lock()
	defer defaultPolicyMtx.Unlock()

	var policy = *defaultPolicy.Load()
	fn(&policy)
	defaultPolicy.Store(&policy)
}

// DefaultPolicy return the copy of current process wide default policy.
func DefaultPolicy() Policy {
	return *defaultPolicy.Load()
}

// merge return the policy with each flag is true if its set on policy or
// on other.
func (policy Policy) merge(other Policy) Policy {
	return Policy{
		IgnoreTrailingSlashRedirects: policy.IgnoreTrailingSlashRedirects ||
			other.IgnoreTrailingSlashRedirects,
		Ignore302Redirects: policy.Ignore302Redirects ||
			other.Ignore302Redirects,
	}
}

// IsOk return true if the outcome is 200, or 302 while Ignore302Redirects
// is set, or a permanent redirect that only add a trailing slash while
// IgnoreTrailingSlashRedirects is set.
func (policy Policy) IsOk(outcome Outcome) (ok bool) {
	var codeOK = strconv.Itoa(http.StatusOK)
	var codeFound = strconv.Itoa(http.StatusFound)

	if outcome.Kind == OutcomeStatus && outcome.Code == codeOK {
		ok = true
	}
	if outcome.Kind == OutcomeStatus && outcome.Code == codeFound &&
		policy.Ignore302Redirects {
		ok = true
	}
	if outcome.Kind == OutcomePermanentRedirect &&
		outcome.TrailingSlashOnly &&
		policy.IgnoreTrailingSlashRedirects {
		ok = true
	}
	return ok
}
