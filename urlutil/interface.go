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

// Package urlutil parses HTTP request targets the way the httpparser
// driver needs them split - scheme, host, port, path, query string,
// fragment and userinfo, each present only when the input actually
// carried it - and decodes application/x-www-form-urlencoded bodies.
package urlutil

import "errors"

var (
	// ErrEmptyInput is returned by ParseURL for an empty request target.
	ErrEmptyInput = errors.New("urlutil: empty input")

	// ErrMalformedConnectForm is returned by ParseURL when isConnectForm
	// is true and input is not a bare "host:port" authority.
	ErrMalformedConnectForm = errors.New("urlutil: CONNECT target must be host:port")

	// ErrEmptyName is returned by URLDecode when a pair's name is empty
	// but its value is not.
	ErrEmptyName = errors.New("urlutil: empty field name with non-empty value")

	// ErrEmptyField is returned by URLDecode when adjacent separators
	// ("&&", a leading "&", or a trailing "&") produce an empty field
	// where one was expected.
	ErrEmptyField = errors.New("urlutil: empty field between separators")
)

// URL holds the components ParseURL recognized in the input. Every field
// is nil unless the input actually carried that component - callers
// distinguish "present and empty" from "absent" by checking for nil.
type URL struct {
	Schema      *string
	Host        *string
	Port        *string
	Path        *string
	QueryString *string
	Fragment    *string
	UserInfo    *string
}
