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

package timer

import (
	"context"
	"sync"
	"time"
)

type waitResult struct {
	elapsed bool
	err     error
}

// Timer is a one-shot timer with at most one waiter at a time.
type Timer struct {
	mu      sync.Mutex
	state   State
	fire    *time.Timer
	waiter  chan waitResult
	deleted bool
}

// New returns a Timer in StateInit.
func New() *Timer {
	return &Timer{state: StateInit}
}

// Start arms the timer for d. It fails with ErrNotInit unless the timer is
// currently in StateInit.
func (t *Timer) Start(d time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.deleted {
		return ErrDeleted
	}
	if t.state != StateInit {
		return ErrNotInit
	}

	t.state = StateTicking
	t.fire = time.AfterFunc(d, t.onFire)
	return nil
}

func (t *Timer) onFire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.deleted || t.state != StateTicking {
		return
	}

	if t.waiter != nil {
		w := t.waiter
		t.waiter = nil
		t.state = StateInit
		w <- waitResult{elapsed: true}
		return
	}

	t.state = StateElapsed
}

// Wait blocks until the timer fires, is stopped/deleted, or ctx is
// cancelled. If the timer already elapsed with no one waiting, Wait
// returns immediately with elapsed=true and moves the timer back to
// StateInit. It fails with ErrWaiterBusy if another Wait is already in
// flight, and ErrNotTicking if the timer was never started.
func (t *Timer) Wait(ctx context.Context) (bool, error) {
	t.mu.Lock()

	if t.deleted {
		t.mu.Unlock()
		return false, ErrDeleted
	}

	if t.state == StateElapsed {
		t.state = StateInit
		t.mu.Unlock()
		return true, nil
	}

	if t.state != StateTicking {
		t.mu.Unlock()
		return false, ErrNotTicking
	}

	if t.waiter != nil {
		t.mu.Unlock()
		return false, ErrWaiterBusy
	}

	ch := make(chan waitResult, 1)
	t.waiter = ch
	t.mu.Unlock()

	select {
	case res := <-ch:
		return res.elapsed, res.err
	case <-ctx.Done():
		t.mu.Lock()
		if t.waiter == ch {
			t.waiter = nil
		}
		t.mu.Unlock()
		return false, ctx.Err()
	}
}

// Stop disarms a ticking timer, failing any waiter with ErrCancelled and
// returning it to StateInit. Stop on a timer that is not ticking is a
// no-op.
func (t *Timer) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.deleted {
		return ErrDeleted
	}
	if t.state != StateTicking {
		return nil
	}

	if t.fire != nil {
		t.fire.Stop()
	}
	t.failWaiterLocked()
	t.state = StateInit
	return nil
}

// Delete permanently retires the timer: idempotent, equivalent to Stop
// plus marking the timer unusable for any future Start/Wait/Stop call.
func (t *Timer) Delete() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.deleted {
		return nil
	}

	if t.fire != nil {
		t.fire.Stop()
	}
	t.failWaiterLocked()
	t.deleted = true
	return nil
}

func (t *Timer) failWaiterLocked() {
	if t.waiter == nil {
		return
	}
	w := t.waiter
	t.waiter = nil
	w <- waitResult{err: ErrCancelled}
}

// State reports the timer's current lifecycle stage.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
