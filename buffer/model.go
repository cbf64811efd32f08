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

// Package buffer implements a fixed-capacity byte region with a read
// position and a write end, the shared scratch space httpparser and conn
// read incoming bytes into and parse out of in place.
package buffer

import "github.com/nabbar/luaw-server/errors"

const ErrResize errors.CodeError = 1

// Buffer is a single contiguous []byte split into three zones:
// [0:pos) already consumed, [pos:end) unread content, [end:cap) writable
// tail. It never reallocates on its own; Resize is the only way to grow it.
type Buffer struct {
	buf []byte
	pos int
	end int
}

// New allocates a Buffer with the given fixed capacity.
func New(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, capacity)}
}

// Append writes p into the buffer's writable tail. It returns false without
// copying anything if p doesn't fit.
func (b *Buffer) Append(p []byte) bool {
	if len(p) > b.RemainingCapacity() {
		return false
	}

	copy(b.buf[b.end:], p)
	b.end += len(p)
	return true
}

// Clear resets pos and end to zero without releasing the backing array.
func (b *Buffer) Clear() {
	b.pos = 0
	b.end = 0
}

// Reset clears the buffer and returns its backing array.
func (b *Buffer) Reset() []byte {
	b.Clear()
	return b.buf
}

// Resize replaces the backing array with one of newCap bytes, copying over
// the unread content. It errors if newCap is smaller than the unread
// content's length.
func (b *Buffer) Resize(newCap int) error {
	if newCap < b.RemainingContentLen() {
		return errors.New(uint16(ErrResize), "buffer: new capacity smaller than unread content")
	}

	n := make([]byte, newCap)
	copy(n, b.buf[b.pos:b.end])

	b.end -= b.pos
	b.pos = 0
	b.buf = n
	return nil
}

// RemainingContentLen is the number of unread bytes (end - pos).
func (b *Buffer) RemainingContentLen() int {
	return b.end - b.pos
}

// RemainingCapacity is the writable tail's length (cap - end).
func (b *Buffer) RemainingCapacity() int {
	return len(b.buf) - b.end
}

// ReadStart returns the unread content, buf[pos:end].
func (b *Buffer) ReadStart() []byte {
	return b.buf[b.pos:b.end]
}

// FillStart returns the writable tail, buf[end:cap].
func (b *Buffer) FillStart() []byte {
	return b.buf[b.end:]
}

// Produced marks n bytes of the writable tail (as returned by a prior
// FillStart) as now-valid content, advancing end. Used by callers - conn,
// chiefly - that read directly into FillStart's slice instead of going
// through Append.
func (b *Buffer) Produced(n int) {
	b.end += n
	if b.end > len(b.buf) {
		b.end = len(b.buf)
	}
}

// Advance moves pos forward by n, marking n bytes of unread content as
// consumed. Used by the httpparser driver as it tokenizes in place.
func (b *Buffer) Advance(n int) {
	b.pos += n
	if b.pos > b.end {
		b.pos = b.end
	}
}

// ToString returns buf[start:end] as a string, relative to the backing
// array rather than pos/end. An empty or out-of-bounds range yields ""
// rather than a panic.
func (b *Buffer) ToString(start, end int) string {
	if start < 0 || end > len(b.buf) || start >= end {
		return ""
	}
	return string(b.buf[start:end])
}
