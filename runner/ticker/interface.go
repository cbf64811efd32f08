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

// Package ticker provides a Ticker runner that invokes a function on a fixed
// interval until stopped, tracking uptime and accumulated errors across the run.
package ticker

import (
	"context"
	"fmt"
	"time"
)

// defaultDuration is used whenever New is given a non-positive interval.
const defaultDuration = 30 * time.Second

// FuncTick is invoked on every tick. The *time.Ticker is the underlying
// stdlib ticker driving the loop, exposed so a callback can inspect or drain it.
type FuncTick func(ctx context.Context, tck *time.Ticker) error

// Ticker runs FuncTick on a fixed interval from Start until Stop, tracking
// uptime and errors across the run.
type Ticker interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Restart(ctx context.Context) error
	IsRunning() bool
	Uptime() time.Duration
	ErrorsLast() error
	ErrorsList() []error
}

// New returns a Ticker that calls fn every interval. A non-positive interval
// falls back to defaultDuration. A nil fn is accepted; every tick will then
// record an "invalid function" error instead of panicking.
func New(interval time.Duration, fn FuncTick) Ticker {
	if interval <= 0 {
		interval = defaultDuration
	}

	return &tickState{
		interval: interval,
		fn:       fn,
	}
}

var errNilContext = fmt.Errorf("ticker: nil context")
