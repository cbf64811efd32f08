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

// Package listener binds one or more TCP addresses and runs a handler
// goroutine per accepted connection, replacing the original reactor's
// single-threaded accept/dispatch loop with Go's native concurrency per
// the coroutine-to-goroutine mapping: a connection handler is an
// ordinary goroutine, not a callback resumed by an event loop.
package listener

import (
	"context"

	"github.com/nabbar/luaw-server/conn"
	liberr "github.com/nabbar/luaw-server/errors"
)

const (
	// ErrAlreadyStarted is returned by Add once StartAll has run.
	ErrAlreadyStarted liberr.CodeError = iota + 1

	// ErrDuplicateAddr is returned by Add for an address already
	// registered in this Set.
	ErrDuplicateAddr

	// ErrListenFailed is returned by StartAll when binding any
	// registered address fails; every successfully bound listener from
	// the same call is closed before returning.
	ErrListenFailed
)

// HandlerFunc services one accepted connection. It returns once the
// connection's work is done; the listener closes nc.Conn afterward if
// the handler hasn't already.
type HandlerFunc func(ctx context.Context, c *conn.Conn)
