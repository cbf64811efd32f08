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

// Package sched implements the scheduler bridge: the opaque-thread-id
// handshake a request handler goroutine uses to suspend itself and be
// resumed later by an unrelated goroutine, with delivery batched to a
// single RunReadyThreads call per event-loop tick rather than happening
// inline inside ResumeThread. Every "thread" here is a real goroutine
// parked on a channel, not a cooperative coroutine - kept as its own
// tested primitive because spec.md names it as a module with invariants
// of its own, independent of how conn and timer happen to implement
// their own suspension internally.
package sched

import (
	"context"

	"github.com/nabbar/luaw-server/conn"
)

// ThreadID identifies a suspended goroutine. Zero is reserved to mean
// "no waiter" and is never assigned by StartRequestThread.
type ThreadID uint64

// RequestHandler is the function a servicing goroutine runs for one
// accepted connection.
type RequestHandler func(ctx context.Context, tid ThreadID, c *conn.Conn)

// Hooks bundles a Bridge's three caller-facing primitives as plain
// function values, the shape listener.Set.StartAll hands down to each
// connection's servicing goroutine instead of resolving the bridge by
// global lookup.
type Hooks struct {
	ResumeThread       func(tid ThreadID, values ...any)
	StartRequestThread func(handler RequestHandler, c *conn.Conn) ThreadID
	RunReadyThreads    func()
}
