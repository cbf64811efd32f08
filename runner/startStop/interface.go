/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package startStop provides a StartStop runner that wraps a pair of
// start/stop functions with goroutine lifecycle tracking: uptime, the last
// N errors observed, and safe concurrent Start/Stop/Restart/IsRunning calls.
//
// A StartStop is typically embedded by components that need to expose the
// github.com/nabbar/luaw-server/runner.Runner contract without re-implementing its
// state machine: call New with the component's own start/stop closures and
// forward the five accessor methods.
package startStop

import (
	"context"
	"time"
)

// FuncStart is the function launched by Start. It must block for the
// lifetime of the run and return when ctx is done.
type FuncStart func(ctx context.Context) error

// FuncStop is the function invoked by Stop once the start function's context
// has been cancelled.
type FuncStop func(ctx context.Context) error

// StartStop is a goroutine-lifecycle runner: it launches FuncStart on Start,
// cancels its context and invokes FuncStop on Stop, and tracks uptime and
// errors across the run.
type StartStop interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Restart(ctx context.Context) error
	IsRunning() bool
	Uptime() time.Duration
	ErrorsLast() error
	ErrorsList() []error
}

// New returns a StartStop wrapping the given start/stop functions. Either
// function may be nil: calling Start or Stop will still succeed, but an
// "invalid start/stop function" error is recorded.
func New(start FuncStart, stop FuncStop) StartStop {
	return &runState{
		fnStart: start,
		fnStop:  stop,
	}
}
