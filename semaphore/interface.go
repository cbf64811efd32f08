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

// Package semaphore wraps semaphore/sem with named worker groups (Bar): a
// Bar is a handle on the same underlying concurrency limit, scoped to a
// title for callers that want to track a named batch of work.
package semaphore

import (
	"context"

	libsem "github.com/nabbar/luaw-server/semaphore/sem"
)

// Bar scopes worker acquisition to a named batch sharing the parent
// Semaphore's concurrency limit.
type Bar interface {
	NewWorker() error
	NewWorkerTry() bool
	DeferWorker()
}

// Semaphore is sem.Sem plus Clone, for spawning an independent instance with
// the same concurrency limit, and BarNumber for naming a batch of workers.
type Semaphore interface {
	libsem.Sem

	// Clone returns an independent Semaphore with the same concurrency limit.
	Clone() Semaphore

	// BarNumber returns a Bar over this Semaphore's worker slots. total,
	// ignore and extra are accepted for call-site compatibility with
	// progress-reporting callers but do not affect worker accounting.
	BarNumber(title string, status string, total int64, ignore bool, extra any) Bar

	// GetMPB always returns nil: this module does not render progress bars.
	GetMPB() interface{}
}

// MaxSimultaneous returns the default concurrency limit used when New is
// called with a limit of 0.
func MaxSimultaneous() int {
	return libsem.MaxSimultaneous()
}

// SetSimultaneous clamps n to [1, MaxSimultaneous()].
func SetSimultaneous(n int64) int64 {
	return libsem.SetSimultaneous(n)
}

// New returns a Semaphore limited to nbrSimultaneous concurrent workers. bar
// is accepted for call-site compatibility; it no longer attaches a progress
// renderer, so GetMPB always returns nil regardless of its value.
func New(ctx context.Context, nbrSimultaneous int64, bar bool) Semaphore {
	return &semState{
		Sem: libsem.New(ctx, nbrSimultaneous),
		bar: bar,
	}
}
