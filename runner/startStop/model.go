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

package startStop

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	librun "github.com/nabbar/luaw-server/runner"
)

type runState struct {
	fnStart FuncStart
	fnStop  FuncStop

	mu  sync.Mutex
	cnl context.CancelFunc
	gen uint64

	running   atomic.Bool
	startedAt atomic.Value

	errMu sync.Mutex
	errs  []error
}

func (o *runState) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.cnl != nil {
		// a previous run is still active: cancel it, its goroutine will
		// notice the superseded generation and exit without touching our state.
		o.cnl()
	}

	cctx, cnl := context.WithCancel(ctx)
	o.gen++
	gen := o.gen
	o.cnl = cnl
	o.mu.Unlock()

	o.clearErrors()
	o.running.Store(true)
	o.startedAt.Store(time.Now())

	go o.runStart(cctx, gen)

	return nil
}

func (o *runState) runStart(ctx context.Context, gen uint64) {
	defer func() {
		if r := recover(); r != nil {
			librun.RecoveryCaller("golib/runner/startStop/start", r)
			o.addError(fmt.Errorf("panic in start function: %v", r))
		}
		o.finishGeneration(gen)
	}()

	fn := o.fnStart
	if fn == nil {
		o.addError(fmt.Errorf("invalid start function"))
		return
	}

	if err := fn(ctx); err != nil {
		o.addError(err)
	}
}

// finishGeneration clears the running state, but only if no newer Start()
// call has superseded this goroutine's generation in the meantime.
func (o *runState) finishGeneration(gen uint64) {
	o.mu.Lock()
	cur := o.gen
	o.mu.Unlock()

	if cur != gen {
		return
	}

	o.running.Store(false)
	o.startedAt.Store(time.Time{})
}

func (o *runState) Stop(ctx context.Context) error {
	o.mu.Lock()
	cnl := o.cnl
	o.cnl = nil
	o.mu.Unlock()

	if cnl == nil {
		// nothing running: Stop is a no-op.
		return nil
	}

	cnl()

	defer func() {
		if r := recover(); r != nil {
			librun.RecoveryCaller("golib/runner/startStop/stop", r)
			o.addError(fmt.Errorf("panic in stop function: %v", r))
		}
	}()

	fn := o.fnStop
	if fn == nil {
		o.addError(fmt.Errorf("invalid stop function"))
		return nil
	}

	if err := fn(ctx); err != nil {
		o.addError(err)
	}

	return nil
}

func (o *runState) Restart(ctx context.Context) error {
	_ = o.Stop(ctx)
	return o.Start(ctx)
}

func (o *runState) IsRunning() bool {
	return o.running.Load()
}

func (o *runState) Uptime() time.Duration {
	if !o.running.Load() {
		return 0
	}

	t, ok := o.startedAt.Load().(time.Time)
	if !ok || t.IsZero() {
		return 0
	}

	return time.Since(t)
}

func (o *runState) addError(err error) {
	if err == nil {
		return
	}

	o.errMu.Lock()
	defer o.errMu.Unlock()

	o.errs = append(o.errs, err)
}

func (o *runState) clearErrors() {
	o.errMu.Lock()
	defer o.errMu.Unlock()

	o.errs = nil
}

func (o *runState) ErrorsLast() error {
	o.errMu.Lock()
	defer o.errMu.Unlock()

	if len(o.errs) == 0 {
		return nil
	}

	return o.errs[len(o.errs)-1]
}

func (o *runState) ErrorsList() []error {
	o.errMu.Lock()
	defer o.errMu.Unlock()

	out := make([]error, len(o.errs))
	copy(out, o.errs)
	return out
}
