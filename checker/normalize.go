// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package checker

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// MalformedURLError is returned when the URL does not start with "http://"
// or "https://".
type MalformedURLError struct {
	URL string
}

func (err *MalformedURLError) Error() string {
	return fmt.Sprintf(`malformed URL %q`, err.URL)
}

// NormalizedURL store the URL with its host converted into ASCII
// compatible encoding.
type NormalizedURL struct {
	// parsed is the result of url.Parse on raw, used to send the
	// request.
	parsed *url.URL

	// Scheme is either "http" or "https".
	Scheme string

	// Host is the host part of original URL after converted to ASCII,
	// including port and user info if its exist.
	Host string

	// Path contains everything after the host, verbatim.
	Path string

	// err contains the error from converting the host or parsing the
	// URL.
	err error

	// raw is the original URL with only the first occurrence of the
	// host replaced.
	raw string
}

// String return the normalized URL as is, without re-encoding.
func (nu *NormalizedURL) String() string {
	return nu.raw
}

// Err return the error from converting or parsing the URL, if any.
// The error is reported by the executor as network error, not during
// normalization.
func (nu *NormalizedURL) Err() error {
	return nu.err
}

// Normalize the rawUrl by converting internationalized host into its
// ASCII compatible encoding.
//
// Only the first occurrence of the original host inside the rawUrl is
// replaced, the rest of URL, including the port, path, and query, are
// kept verbatim.
//
// It return [*MalformedURLError] only if rawUrl does not start with
// "http://" or "https://".
// Other failure, like invalid port, is stored in the returned
// NormalizedURL, see [NormalizedURL.Err].
func Normalize(rawUrl string) (nu *NormalizedURL, err error) {
	var scheme string
	var rest string

	switch {
	case strings.HasPrefix(rawUrl, `http://`):
		scheme = `http`
		rest = rawUrl[len(`http://`):]
	case strings.HasPrefix(rawUrl, `https://`):
		scheme = `https`
		rest = rawUrl[len(`https://`):]
	default:
		return nil, &MalformedURLError{URL: rawUrl}
	}

	var host, path string
	var idx = strings.IndexByte(rest, '/')
	if idx < 0 {
		host = rest
	} else {
		host = rest[:idx]
		path = rest[idx:]
	}

	nu = &NormalizedURL{
		Scheme: scheme,
		Host:   host,
		Path:   path,
		raw:    rawUrl,
	}

	var asciiHost string
	asciiHost, nu.err = idna.Punycode.ToASCII(host)
	if nu.err != nil {
		return nu, nil
	}
	nu.Host = asciiHost

	// Replace the first match only; the host may be repeated later
	// inside the path or query.
	idx = strings.Index(rawUrl, host)
	nu.raw = rawUrl[:idx] + asciiHost + rawUrl[idx+len(host):]

	nu.parsed, nu.err = url.Parse(nu.raw)
	return nu, nil
}
