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

package sched

import (
	"context"
	"sync"

	"github.com/nabbar/luaw-server/conn"
)

type readyCall struct {
	tid    ThreadID
	values []any
}

// Bridge is the scheduler bridge: it hands out thread ids, queues
// resumption values, and delivers them in a batch once per tick.
type Bridge struct {
	mu      sync.Mutex
	next    uint64
	waiters map[ThreadID]chan []any
	ready   []readyCall
}

// NewBridge returns an empty Bridge.
func NewBridge() *Bridge {
	return &Bridge{waiters: make(map[ThreadID]chan []any)}
}

// ResumeThread queues values for delivery to tid the next time
// RunReadyThreads runs. It is a no-op for tid zero. Calling it for a tid
// with no registered waiter simply drops the values - the same "no
// reader present" tolerance the read protocol has for Conn.
func (b *Bridge) ResumeThread(tid ThreadID, values ...any) {
	if tid == 0 {
		return
	}
	b.mu.Lock()
	b.ready = append(b.ready, readyCall{tid: tid, values: values})
	b.mu.Unlock()
}

// RunReadyThreads delivers every value queued by ResumeThread since the
// previous call, waking the corresponding Suspend calls. The event loop
// calls this once per tick, after I/O callbacks for that tick have run.
func (b *Bridge) RunReadyThreads() {
	b.mu.Lock()
	batch := b.ready
	b.ready = nil
	b.mu.Unlock()

	for _, rc := range batch {
		b.mu.Lock()
		ch, ok := b.waiters[rc.tid]
		if ok {
			delete(b.waiters, rc.tid)
		}
		b.mu.Unlock()

		if ok {
			ch <- rc.values
		}
	}
}

// StartRequestThread allocates a new, never-zero thread id and runs
// handler on a fresh goroutine bound to it, returning immediately without
// waiting for handler to finish.
func (b *Bridge) StartRequestThread(handler RequestHandler, c *conn.Conn) ThreadID {
	b.mu.Lock()
	b.next++
	tid := ThreadID(b.next)
	b.mu.Unlock()

	go handler(context.Background(), tid, c)
	return tid
}

// Suspend parks the calling goroutine until a ResumeThread call for tid
// is flushed by RunReadyThreads, and returns the values it carried.
// Calling Suspend again for a tid already registered replaces the first
// call's waiter, which then never receives anything - the same
// programming-misuse case spec.md §8 calls out for the double-waiter
// invariant.
func (b *Bridge) Suspend(tid ThreadID) []any {
	ch := make(chan []any, 1)

	b.mu.Lock()
	b.waiters[tid] = ch
	b.mu.Unlock()

	return <-ch
}

// Hooks exposes ResumeThread, StartRequestThread and RunReadyThreads as
// plain function values, so callers further down the stack (listener.Set)
// can be handed exactly the primitives they need without a dependency on
// *Bridge itself.
func (b *Bridge) Hooks() Hooks {
	return Hooks{
		ResumeThread:       b.ResumeThread,
		StartRequestThread: b.StartRequestThread,
		RunReadyThreads:    b.RunReadyThreads,
	}
}

type hooksCtxKey struct{}

// WithHooks returns a context carrying h, retrievable by a connection
// handler via HooksFromContext. listener.Set.StartAll stamps every
// accept loop's base context with the Bridge's own Hooks this way,
// replacing "resolve three globals at startup" with ordinary
// constructor/context injection.
func WithHooks(ctx context.Context, h Hooks) context.Context {
	return context.WithValue(ctx, hooksCtxKey{}, h)
}

// HooksFromContext retrieves the Hooks stamped by WithHooks, if any.
func HooksFromContext(ctx context.Context) (Hooks, bool) {
	h, ok := ctx.Value(hooksCtxKey{}).(Hooks)
	return h, ok
}
