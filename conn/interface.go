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

// Package conn wraps a net.Conn with the read/write suspension protocol the
// request-handling goroutine relies on: Read and Write register the calling
// goroutine as the connection's at-most-one waiter, block until the
// background reader delivers bytes (or the deadline/close path fails the
// wait), and a reference count keeps the underlying socket alive for as
// long as any caller or in-flight operation still holds it.
package conn

import (
	"errors"
	"time"
)

// Config tunes a Conn's behaviour. IdleTimeout, when positive, is the
// duration StartReading's background loop will wait for the next byte
// before closing the connection on its own.
type Config struct {
	IdleTimeout time.Duration
}

var (
	// ErrClosed is returned by Read/Write/StartReading once the connection
	// has been closed, and by Close on a second call's more specific
	// predecessor errors.
	ErrClosed = errors.New("conn: connection closed")

	// ErrWaiterBusy is returned when Read (or Write) is called while a
	// previous call of the same kind is still in flight. The protocol
	// allows at most one outstanding reader and one outstanding writer.
	ErrWaiterBusy = errors.New("conn: a previous call of this kind is still in flight")

	// ErrTimeout is returned when a Read or Write's deadline elapses
	// before the operation completes.
	ErrTimeout = errors.New("conn: i/o timeout")

	// ErrBufferFull is returned by Read when the caller-supplied buffer
	// has no room left for the bytes that just arrived.
	ErrBufferFull = errors.New("conn: read buffer has no remaining capacity")
)
