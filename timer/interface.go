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

// Package timer implements the one-shot wait primitive request handlers
// suspend on: start it, then Wait until it fires or is cancelled. A Timer
// holds at most one waiter at a time and remembers having fired if it
// elapses before anyone is waiting.
package timer

import "errors"

// State is a Timer's externally visible lifecycle stage.
type State int

const (
	// StateInit is a freshly created or stopped timer: not ticking, no
	// pending elapsed notification.
	StateInit State = iota

	// StateTicking is a timer armed by Start, counting down to its fire
	// time.
	StateTicking

	// StateElapsed is a timer that fired while no goroutine was waiting
	// on it; the next Wait call is satisfied immediately.
	StateElapsed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateTicking:
		return "ticking"
	case StateElapsed:
		return "elapsed"
	default:
		return "unknown"
	}
}

var (
	// ErrNotInit is returned by Start when the timer is not in StateInit.
	ErrNotInit = errors.New("timer: start requires state init")

	// ErrNotTicking is returned by Wait when the timer is neither
	// ticking nor already elapsed.
	ErrNotTicking = errors.New("timer: wait requires state ticking or elapsed")

	// ErrWaiterBusy is returned by Wait when a previous Wait call is
	// still in flight. At most one waiter is allowed at a time.
	ErrWaiterBusy = errors.New("timer: a previous wait is still in flight")

	// ErrCancelled is delivered to a waiter by Stop or Delete.
	ErrCancelled = errors.New("timer: cancelled")

	// ErrDeleted is returned by any operation on a timer that has been
	// deleted.
	ErrDeleted = errors.New("timer: timer deleted")
)
