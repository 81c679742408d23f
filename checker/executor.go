// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

import (
	"crypto/tls"
	"errors"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// RawOutcomeKind define the variant of [RawOutcome].
type RawOutcomeKind int

// List of raw outcome kind.
const (
	RawResponse RawOutcomeKind = iota
	RawTimedOut
	RawFailed
)

// RawOutcome is the unprocessed result of single request.
type RawOutcome struct {
	// Header of response, only for RawResponse.
	Header http.Header

	// Code is the HTTP status code as string, only for RawResponse.
	Code string

	// Message contains the error message for RawTimedOut and
	// RawFailed.
	Message string

	Kind RawOutcomeKind
}

// Executor send one request to the URL and return its raw outcome.
// It must not follow redirect and must not retry.
// If [NormalizedURL.Err] is not nil the executor should return RawFailed
// with the error message.
type Executor interface {
	Execute(nu *NormalizedURL) RawOutcome
}

// httpExecutor is the default [Executor] using [http.Client].
type httpExecutor struct {
	log       *log.Logger
	httpc     *http.Client
	userAgent string
	isVerbose bool
}

func newHTTPExecutor(opts Options) (exec *httpExecutor) {
	var netDial = &net.Dialer{
		Timeout: opts.OpenTimeout,
	}
	var tlsConfig = &tls.Config{
		InsecureSkipVerify: opts.Insecure,
	}

	exec = &httpExecutor{
		log:       log.New(os.Stderr, ``, log.LstdFlags),
		userAgent: opts.UserAgent,
		isVerbose: opts.IsVerbose,
		httpc: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           netDial.DialContext,
				DisableKeepAlives:     true,
				ExpectContinueTimeout: 1 * time.Second,
				ForceAttemptHTTP2:     true,
				ResponseHeaderTimeout: opts.ReadTimeout,
				TLSClientConfig:       tlsConfig,
				TLSHandshakeTimeout:   opts.OpenTimeout,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
	return exec
}

// Execute send GET request to the URL.
// Any error is converted into RawTimedOut or RawFailed.
func (exec *httpExecutor) Execute(nu *NormalizedURL) (raw RawOutcome) {
	var (
		httpReq  *http.Request
		httpResp *http.Response
		err      error
	)

	defer func() {
		if exec.isVerbose && raw.Kind != RawResponse {
			exec.log.Printf("check: GET %s: %s\n", nu, raw.Message)
		}
	}()

	if nu.err != nil {
		return failedOutcome(nu.err)
	}

	httpReq, err = http.NewRequest(http.MethodGet, nu.parsed.String(), nil)
	if err != nil {
		return failedOutcome(err)
	}
	httpReq.Header.Set(`User-Agent`, exec.userAgent)

	if exec.isVerbose {
		exec.log.Printf("check: GET %s\n", nu)
	}

	httpResp, err = exec.httpc.Do(httpReq)
	if err != nil {
		return failedOutcome(err)
	}
	_ = httpResp.Body.Close()

	raw = RawOutcome{
		Kind:   RawResponse,
		Code:   strconv.Itoa(httpResp.StatusCode),
		Header: httpResp.Header,
	}
	return raw
}

// failedOutcome convert the error from request into RawOutcome.
// The [url.Error] wrapper is removed so the message contains only the
// underlying cause.
func failedOutcome(err error) (raw RawOutcome) {
	var errNet net.Error
	if errors.As(err, &errNet) && errNet.Timeout() {
		raw.Kind = RawTimedOut
	} else {
		raw.Kind = RawFailed
	}

	var errUrl *url.Error
	if errors.As(err, &errUrl) && errUrl.Err != nil {
		err = errUrl.Err
	}
	raw.Message = err.Error()
	return raw
}
