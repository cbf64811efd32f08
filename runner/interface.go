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
 */

// Package runner defines the common start/stop/restart lifecycle contract shared
// by every background worker in this module (aggregators, log hooks, listeners,
// the scheduler bridge) and a panic-recovery helper used at the boundary of every
// goroutine those workers spawn.
package runner

import (
	"context"
	"time"
)

// Runner is the lifecycle contract implemented by every background worker:
// github.com/nabbar/luaw-server/runner/startStop.StartStop and
// github.com/nabbar/luaw-server/runner/ticker.Ticker both satisfy it.
type Runner interface {
	// Start launches the worker against the given context. Start returns as soon
	// as the worker goroutine has been scheduled; it does not block for the
	// worker's full lifetime. Calling Start on a running Runner stops the
	// previous run first.
	Start(ctx context.Context) error

	// Stop signals the worker to exit and waits for it to do so. Stop is
	// idempotent: calling it while not running is a no-op that returns nil.
	Stop(ctx context.Context) error

	// Restart is Stop followed by Start.
	Restart(ctx context.Context) error

	// IsRunning reports whether the worker is currently active.
	IsRunning() bool

	// Uptime reports how long the worker has been running, or zero if it is
	// not currently running.
	Uptime() time.Duration

	// ErrorsLast returns the most recent error observed by the worker, or nil.
	ErrorsLast() error

	// ErrorsList returns every error observed during the current run.
	ErrorsList() []error
}
