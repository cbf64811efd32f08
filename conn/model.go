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

package conn

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/nabbar/luaw-server/buffer"
)

type readResult struct {
	n   int
	err error
}

type writeResult struct {
	n   int
	err error
}

// Conn wraps a net.Conn, exposing it to a request handler goroutine through
// the same read/write/close shape the handler would use on a raw
// net.Conn, plus the reference counting and at-most-one-waiter guard the
// rest of the runtime (sched, httpparser) relies on. Read and Write are
// ordinary blocking calls from the caller's point of view - each parks its
// goroutine on a channel fed by a short-lived goroutine performing the
// actual syscall, so that a context cancellation or a concurrent Close can
// interrupt them deterministically.
type Conn struct {
	nc  net.Conn
	cfg Config

	refs   int32
	closed atomic.Bool

	started atomic.Bool
	reading atomic.Bool
	writing atomic.Bool
}

// New wraps nc. The returned Conn starts with a reference count of one,
// held by the caller.
func New(nc net.Conn, cfg Config) *Conn {
	return &Conn{nc: nc, cfg: cfg, refs: 1}
}

// Retain increments the reference count. Callers that hand the Conn to
// another goroutine or store it beyond the scope of a single call should
// Retain first and Release when done.
func (c *Conn) Retain() {
	atomic.AddInt32(&c.refs, 1)
}

// Release decrements the reference count. It never frees anything
// explicitly - once every Retain has a matching Release and Close has run,
// the Conn becomes eligible for ordinary garbage collection.
func (c *Conn) Release() {
	atomic.AddInt32(&c.refs, -1)
}

// StartReading marks the connection as actively driven by the caller's
// read loop. It is idempotent and only rejects a connection that is
// already closed; Read may be called any number of times afterwards.
func (c *Conn) StartReading() error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.started.Store(true)
	return nil
}

// Read blocks until bytes arrive, buf's remaining capacity is exhausted,
// the deadline elapses, ctx is cancelled, or the connection is closed,
// whichever comes first. It fails with ErrWaiterBusy if another Read is
// already in flight - this protocol allows at most one outstanding reader.
func (c *Conn) Read(ctx context.Context, buf *buffer.Buffer, timeout time.Duration) (int, error) {
	if c.closed.Load() {
		return 0, ErrClosed
	}
	if !c.reading.CompareAndSwap(false, true) {
		return 0, ErrWaiterBusy
	}
	defer c.reading.Store(false)

	if buf.RemainingCapacity() == 0 {
		c.closeLocked()
		return 0, ErrBufferFull
	}

	if timeout > 0 {
		_ = c.nc.SetReadDeadline(time.Now().Add(timeout))
	} else {
		_ = c.nc.SetReadDeadline(time.Time{})
	}

	ch := make(chan readResult, 1)
	go func() {
		n, err := c.nc.Read(buf.FillStart())
		ch <- readResult{n: n, err: err}
	}()

	select {
	case res := <-ch:
		if res.n > 0 {
			buf.Produced(res.n)
		}
		if res.err != nil {
			if isTimeout(res.err) {
				c.closeLocked()
				return res.n, ErrTimeout
			}
			c.closeLocked()
			return res.n, translateClosed(res.err)
		}
		return res.n, nil
	case <-ctx.Done():
		_ = c.nc.SetReadDeadline(time.Now())
		<-ch
		return 0, ctx.Err()
	}
}

// Write submits p to the connection, optionally framed as a single HTTP
// chunked-transfer-encoding chunk. It fails with ErrWaiterBusy if another
// Write is already in flight - this protocol allows at most one
// outstanding writer.
func (c *Conn) Write(ctx context.Context, p []byte, timeout time.Duration, chunked bool) (int, error) {
	if c.closed.Load() {
		return 0, ErrClosed
	}
	if !c.writing.CompareAndSwap(false, true) {
		return 0, ErrWaiterBusy
	}
	defer c.writing.Store(false)

	c.Retain()
	defer c.Release()

	if timeout > 0 {
		_ = c.nc.SetWriteDeadline(time.Now().Add(timeout))
	} else {
		_ = c.nc.SetWriteDeadline(time.Time{})
	}

	payload := p
	if chunked {
		payload = chunkFrame(p)
	}

	ch := make(chan writeResult, 1)
	go func() {
		n, err := c.nc.Write(payload)
		ch <- writeResult{n: n, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			if isTimeout(res.err) {
				c.closeLocked()
				return 0, ErrTimeout
			}
			c.closeLocked()
			return res.n, translateClosed(res.err)
		}
		if chunked {
			return len(p), nil
		}
		return res.n, nil
	case <-ctx.Done():
		_ = c.nc.SetWriteDeadline(time.Now())
		<-ch
		return 0, ctx.Err()
	}
}

// chunkFrame wraps p in a single HTTP/1.1 chunked-transfer-encoding chunk:
// its length in hex, CRLF, the bytes, CRLF. It does not append the
// trailing zero-length terminator chunk - that is the caller's decision,
// issued as its own Write once the response body is complete.
func chunkFrame(p []byte) []byte {
	n := len(p)

	hex := "0123456789abcdef"
	var digits []byte
	if n == 0 {
		digits = []byte{'0'}
	}
	for n > 0 {
		digits = append([]byte{hex[n%16]}, digits...)
		n /= 16
	}

	out := make([]byte, 0, len(digits)+4+len(p))
	out = append(out, digits...)
	out = append(out, '\r', '\n')
	out = append(out, p...)
	out = append(out, '\r', '\n')
	return out
}

func isTimeout(err error) bool {
	ne, ok := err.(net.Error)
	return ok && ne.Timeout()
}

// translateClosed normalizes any error seen after the connection has just
// been torn down into ErrClosed, so callers observing a failed Read/Write
// don't need to special-case every flavor of "use of closed connection"
// the standard library's net package produces per platform.
func translateClosed(err error) error {
	if err == nil {
		return nil
	}
	return ErrClosed
}

// Close idempotently tears the connection down: it closes the underlying
// socket - which unblocks any in-flight Read/Write with an error - and
// releases the caller's reference.
func (c *Conn) Close() error {
	return c.closeLocked()
}

func (c *Conn) closeLocked() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := c.nc.Close()
	c.Release()
	return err
}
