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

package ticker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	librun "github.com/nabbar/luaw-server/runner"
)

type tickState struct {
	interval time.Duration
	fn       FuncTick

	mu   sync.Mutex
	cnl  context.CancelFunc
	done chan struct{}

	running   atomic.Bool
	startedAt atomic.Value

	errMu sync.Mutex
	errs  []error
}

func (o *tickState) Start(ctx context.Context) error {
	if ctx == nil {
		return errNilContext
	}

	// ensure any previous run is fully stopped before launching a new one.
	_ = o.Stop(ctx)

	cctx, cnl := context.WithCancel(ctx)
	done := make(chan struct{})

	o.mu.Lock()
	o.cnl = cnl
	o.done = done
	o.mu.Unlock()

	o.clearErrors()
	o.running.Store(true)
	o.startedAt.Store(time.Now())

	go o.loop(cctx, done)

	return nil
}

func (o *tickState) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(o.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			o.fire(ctx, t)
		}
	}
}

func (o *tickState) fire(ctx context.Context, t *time.Ticker) {
	defer func() {
		if r := recover(); r != nil {
			librun.RecoveryCaller("golib/runner/ticker/fire", r)
			o.addError(fmt.Errorf("panic in ticker function: %v", r))
		}
	}()

	fn := o.fn
	if fn == nil {
		o.addError(fmt.Errorf("invalid function"))
		return
	}

	if err := fn(ctx, t); err != nil {
		o.addError(err)
	}
}

func (o *tickState) Stop(ctx context.Context) error {
	o.mu.Lock()
	cnl := o.cnl
	done := o.done
	o.cnl = nil
	o.done = nil
	o.mu.Unlock()

	if cnl != nil {
		cnl()
	}

	if done != nil {
		<-done
	}

	o.running.Store(false)
	o.startedAt.Store(time.Time{})

	return nil
}

func (o *tickState) Restart(ctx context.Context) error {
	if ctx == nil {
		return errNilContext
	}

	_ = o.Stop(ctx)
	return o.Start(ctx)
}

func (o *tickState) IsRunning() bool {
	return o.running.Load()
}

func (o *tickState) Uptime() time.Duration {
	if !o.running.Load() {
		return 0
	}

	t, ok := o.startedAt.Load().(time.Time)
	if !ok || t.IsZero() {
		return 0
	}

	return time.Since(t)
}

func (o *tickState) addError(err error) {
	o.errMu.Lock()
	defer o.errMu.Unlock()

	o.errs = append(o.errs, err)
}

func (o *tickState) clearErrors() {
	o.errMu.Lock()
	defer o.errMu.Unlock()

	o.errs = nil
}

func (o *tickState) ErrorsLast() error {
	o.errMu.Lock()
	defer o.errMu.Unlock()

	if len(o.errs) == 0 {
		return nil
	}

	return o.errs[len(o.errs)-1]
}

func (o *tickState) ErrorsList() []error {
	o.errMu.Lock()
	defer o.errMu.Unlock()

	out := make([]error, len(o.errs))
	copy(out, o.errs)
	return out
}
