/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

// Package protocol defines the network transport kinds accepted by the
// socket and syslog hooks, with string/int marshaling for config files and
// a mapstructure decode hook for viper.
package protocol

import "math"

// NetworkProtocol identifies a transport kind accepted by net.Dial/net.Listen
// style constructors. The zero value, NetworkEmpty, marshals to an empty string.
type NetworkProtocol uint8

const (
	NetworkEmpty NetworkProtocol = iota
	NetworkUnix
	NetworkTCP
	NetworkTCP4
	NetworkTCP6
	NetworkUDP
	NetworkUDP4
	NetworkUDP6
	NetworkIP
	NetworkIP4
	NetworkIP6
	NetworkUnixGram
)

var names = map[NetworkProtocol]string{
	NetworkUnix:     "unix",
	NetworkTCP:      "tcp",
	NetworkTCP4:     "tcp4",
	NetworkTCP6:     "tcp6",
	NetworkUDP:      "udp",
	NetworkUDP4:     "udp4",
	NetworkUDP6:     "udp6",
	NetworkIP:       "ip",
	NetworkIP4:      "ip4",
	NetworkIP6:      "ip6",
	NetworkUnixGram: "unixgram",
}

var byName = func() map[string]NetworkProtocol {
	m := make(map[string]NetworkProtocol, len(names))
	for p, s := range names {
		m[s] = p
	}
	return m
}()

// String returns the lowercase name of the protocol, or "" if invalid.
func (p NetworkProtocol) String() string {
	return names[p]
}

// Code is an alias for String, kept for call sites that prefer naming the
// wire representation explicitly rather than relying on Stringer.
func (p NetworkProtocol) Code() string {
	return p.String()
}

// Int returns the protocol as an int, or 0 if invalid.
func (p NetworkProtocol) Int() int {
	if _, ok := names[p]; !ok {
		return 0
	}
	return int(p)
}

// Int64 returns the protocol as an int64, or 0 if invalid.
func (p NetworkProtocol) Int64() int64 {
	return int64(p.Int())
}

// Uint returns the protocol as a uint, or 0 if invalid.
func (p NetworkProtocol) Uint() uint {
	return uint(p.Int())
}

// Uint64 returns the protocol as a uint64, or 0 if invalid.
func (p NetworkProtocol) Uint64() uint64 {
	return uint64(p.Int())
}

// Parse resolves a protocol name, trimming surrounding whitespace and a
// single layer of quoting (", ' or `), case-insensitively. Unknown input
// returns NetworkEmpty.
func Parse(s string) NetworkProtocol {
	return byName[normalize(s)]
}

// ParseBytes is Parse over a []byte, for decoders that hold raw wire data.
func ParseBytes(b []byte) NetworkProtocol {
	return Parse(string(b))
}

// ParseInt64 resolves a protocol from its Int64 encoding. Out-of-range
// values (negative, or above math.MaxUint8) return NetworkEmpty.
func ParseInt64(v int64) NetworkProtocol {
	if v < 0 || v > math.MaxUint8 {
		return NetworkEmpty
	}

	p := NetworkProtocol(v)
	if _, ok := names[p]; !ok {
		return NetworkEmpty
	}

	return p
}

func normalize(s string) string {
	s = trimSpace(s)
	s = trimQuotes(s)
	s = trimSpace(s)
	return toLower(s)
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && isSpace(s[i]) {
		i++
	}
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func trimQuotes(s string) string {
	if len(s) < 2 {
		return s
	}

	switch s[0] {
	case '"', '\'', '`':
		if s[len(s)-1] == s[0] {
			return s[1 : len(s)-1]
		}
	}

	return s
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
