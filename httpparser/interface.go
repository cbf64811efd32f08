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

// Package httpparser turns HTTP/1.x's push-style token stream (method,
// URL, header name/value pairs, body fragments, message-complete) into a
// pull API: Parse consumes whatever is available in a buffer.Buffer and
// returns exactly one tag per call, advancing the buffer by only the
// bytes that tag actually required so pipelined messages and partial
// reads both work without copying. No third-party HTTP/1 token parser
// exists among this module's domain dependencies, so the state machine
// below is hand-written against the standard library's byte-slice
// scanning rather than adapted from a pack library - see DESIGN.md.
package httpparser

import "errors"

// Kind selects whether Parse reads a request-line or a status-line.
type Kind int

const (
	// Request parses "METHOD target HTTP/x.y" start lines.
	Request Kind = iota

	// Response parses "HTTP/x.y status reason" start lines.
	Response
)

// Tag identifies what a Parse call produced.
type Tag int

const (
	TagNone Tag = iota
	TagMessageBegin
	TagURL
	TagStatus
	TagHeaderField
	TagHeaderValue
	TagHeadersComplete
	TagBody
	TagMessageComplete
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagMessageBegin:
		return "message_begin"
	case TagURL:
		return "url"
	case TagStatus:
		return "status"
	case TagHeaderField:
		return "header_field"
	case TagHeaderValue:
		return "header_value"
	case TagHeadersComplete:
		return "headers_complete"
	case TagBody:
		return "body"
	case TagMessageComplete:
		return "message_complete"
	default:
		return "unknown"
	}
}

var (
	// ErrMalformedStartLine is returned when a request-line or
	// status-line cannot be parsed. The caller should close the
	// connection with a 400-class reason.
	ErrMalformedStartLine = errors.New("httpparser: malformed start line")

	// ErrMalformedHeader is returned when a header line has no ':'
	// separator.
	ErrMalformedHeader = errors.New("httpparser: malformed header line")

	// ErrInvalidContentLength is returned when Content-Length isn't a
	// valid non-negative integer.
	ErrInvalidContentLength = errors.New("httpparser: invalid Content-Length")
)
