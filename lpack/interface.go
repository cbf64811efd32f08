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

// Package lpack implements the tag-prefixed binary wire format used to
// serialize structured values between a connection handler and its
// peer: every value on the wire is a one-byte Tag marker, optionally
// followed by a fixed-width or length-prefixed payload, all integers
// and lengths written big-endian.
package lpack

import "github.com/nabbar/luaw-server/errors"

// Tag identifies the marker byte a value is framed with. Values and
// ordering are part of the wire format - do not renumber.
type Tag uint8

const (
	// TypeMarker is a meta-value that should never itself appear in a
	// stream; Decode rejects it if encountered.
	TypeMarker Tag = iota

	// Single-byte structural markers, no payload.
	MapStart
	ArrayStart
	DictStart
	RecordEnd

	// Single-byte value markers, no payload.
	Nil
	BoolTrue
	BoolFalse

	// Fixed-width numeric payloads.
	Uint8
	DictEntry // same wire width as Uint8
	Uint16
	BigDictEntry // same wire width as Uint16
	Uint32
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64

	// Length-prefixed string payloads.
	String    // 1-byte length prefix
	BigString // 2-byte length prefix
	HugeString // 4-byte length prefix
	DictURL    // 1-byte length prefix
	BigDictURL // 2-byte length prefix
)

const (
	// ErrUnknownTag is returned for a Tag value outside the enum above,
	// or for TypeMarker itself.
	ErrUnknownTag errors.CodeError = iota + 1

	// ErrTruncatedQueue is returned by Encode when a tag requiring a
	// payload is the last item in the item list.
	ErrTruncatedQueue

	// ErrValueType is returned by Encode when an item's Go type doesn't
	// match what its preceding Tag requires.
	ErrValueType

	// ErrStringTooLarge is returned by Encode when a string's length
	// exceeds what its Tag's length prefix can represent.
	ErrStringTooLarge
)
