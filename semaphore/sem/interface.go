/*
 * MIT License
 *
 * Copyright (c) 2019 Nicolas JUHEL
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

// Package sem implements the bounded-concurrency primitive used throughout
// this module to cap the number of goroutines a component may run at once:
// a positive limit is backed by golang.org/x/sync/semaphore.Weighted, a
// limit of 0 falls back to runtime.GOMAXPROCS(0), and a negative limit
// yields an unbounded sync.WaitGroup-based implementation.
package sem

import (
	"context"
	"runtime"
	"time"
)

// Sem caps concurrent workers and doubles as a context.Context cancelled by
// DeferMain, so callers can select on it alongside their own cancellation.
type Sem interface {
	context.Context

	// Weighted returns the configured concurrency limit, or -1 if unbounded.
	Weighted() int64

	// NewWorker blocks until a worker slot is available or the semaphore's
	// context is done.
	NewWorker() error

	// NewWorkerTry acquires a worker slot without blocking.
	NewWorkerTry() bool

	// DeferWorker releases a worker slot acquired by NewWorker/NewWorkerTry.
	DeferWorker()

	// WaitAll blocks until every outstanding worker has called DeferWorker.
	WaitAll() error

	// DeferMain cancels the semaphore's context, unblocking any pending
	// NewWorker/WaitAll calls with a context error.
	DeferMain()

	// New returns a fresh, independent Sem with the same concurrency limit,
	// derived from this one's context.
	New() Sem
}

// MaxSimultaneous returns the default concurrency limit used when New is
// called with a limit of 0: the number of logical CPUs visible to the process.
func MaxSimultaneous() int {
	return runtime.GOMAXPROCS(0)
}

// SetSimultaneous clamps n to [1, MaxSimultaneous()], returning MaxSimultaneous()
// for any n outside that range.
func SetSimultaneous(n int64) int64 {
	max := int64(MaxSimultaneous())

	if n < 1 || n > max {
		return max
	}

	return n
}

// New returns a Sem limited to nbrSimultaneous concurrent workers.
//
//   - nbrSimultaneous == 0 uses MaxSimultaneous().
//   - nbrSimultaneous > 0 uses exactly that many slots.
//   - nbrSimultaneous < 0 is unbounded (sync.WaitGroup-backed).
func New(ctx context.Context, nbrSimultaneous int64) Sem {
	cctx, cnl := context.WithCancel(ctx)

	if nbrSimultaneous < 0 {
		return &wgSem{ctxPassthrough: ctxPassthrough{ctx: cctx}, cnl: cnl}
	}

	if nbrSimultaneous == 0 {
		nbrSimultaneous = int64(MaxSimultaneous())
	}

	return newWeighted(cctx, cnl, nbrSimultaneous)
}

type ctxPassthrough struct {
	ctx context.Context
}

func (o ctxPassthrough) Deadline() (time.Time, bool) { return o.ctx.Deadline() }
func (o ctxPassthrough) Done() <-chan struct{}       { return o.ctx.Done() }
func (o ctxPassthrough) Err() error                  { return o.ctx.Err() }
func (o ctxPassthrough) Value(key any) any           { return o.ctx.Value(key) }
