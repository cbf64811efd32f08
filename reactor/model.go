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

package reactor

import (
	"context"
	"time"

	"github.com/nabbar/luaw-server/runner"
	"github.com/nabbar/luaw-server/runner/startStop"
	"github.com/nabbar/luaw-server/sched"
)

// Reactor drains a *sched.Bridge's ready queue once per explicit Tick
// and once per fallback interval. It implements runner.Runner.
type Reactor struct {
	bridge *sched.Bridge
	rs     startStop.StartStop
	tick   chan struct{}
}

// New returns a Reactor bound to bridge, with fallback draining every
// interval. A zero or negative interval disables the fallback - only
// explicit Tick calls drain the queue, which is only safe if every
// caller capable of resuming a thread also calls Tick.
func New(bridge *sched.Bridge, interval time.Duration) *Reactor {
	r := &Reactor{
		bridge: bridge,
		tick:   make(chan struct{}, 1),
	}

	r.rs = startStop.New(
		func(ctx context.Context) error { return r.loop(ctx, interval) },
		func(ctx context.Context) error { return nil },
	)

	return r
}

func (r *Reactor) loop(ctx context.Context, interval time.Duration) error {
	var fallback <-chan time.Time

	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		fallback = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fallback:
			r.bridge.RunReadyThreads()
		case <-r.tick:
			r.bridge.RunReadyThreads()
		}
	}
}

// Tick requests one extra ready-queue drain at the next opportunity.
// Safe to call before Start or after Stop: the request is simply
// dropped, matching the Bridge's own tolerance for resuming a thread
// nobody is waiting on. Multiple Tick calls between two drains collapse
// into one - Tick only promises "at least once", not "once per call".
func (r *Reactor) Tick() {
	select {
	case r.tick <- struct{}{}:
	default:
	}
}

func (r *Reactor) Start(ctx context.Context) error   { return r.rs.Start(ctx) }
func (r *Reactor) Stop(ctx context.Context) error    { return r.rs.Stop(ctx) }
func (r *Reactor) Restart(ctx context.Context) error { return r.rs.Restart(ctx) }
func (r *Reactor) IsRunning() bool                   { return r.rs.IsRunning() }
func (r *Reactor) Uptime() time.Duration             { return r.rs.Uptime() }
func (r *Reactor) ErrorsLast() error                 { return r.rs.ErrorsLast() }
func (r *Reactor) ErrorsList() []error               { return r.rs.ErrorsList() }

var _ runner.Runner = (*Reactor)(nil)
