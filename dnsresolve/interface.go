/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package dnsresolve resolves hostnames to a dotted-quad IPv4 address
// against a configured set of nameservers, replacing the blocking
// getaddrinfo-style call a connection handler used to make inline.
package dnsresolve

import "github.com/nabbar/luaw-server/errors"

const (
	// ErrNoNameservers is returned by NewResolver when given an empty
	// nameserver list.
	ErrNoNameservers errors.CodeError = iota + 1

	// ErrNoSuchHost is returned when every configured nameserver
	// answered with no A record for the hostname.
	ErrNoSuchHost

	// ErrAllNameserversFailed is returned when every configured
	// nameserver either timed out or returned a transport error.
	ErrAllNameserversFailed
)
