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

package listener

import (
	"context"
	"net"
	"sync"

	"github.com/nabbar/luaw-server/conn"
	liberr "github.com/nabbar/luaw-server/errors"
	"github.com/nabbar/luaw-server/sched"
)

type boundAddr struct {
	addr    string
	handler HandlerFunc
	ln      net.Listener
}

// Set is a collection of address/handler pairs started and stopped
// together, the way the teacher's httpserver/pool groups multiple
// Server instances under one lifecycle.
type Set struct {
	mu      sync.Mutex
	entries []*boundAddr
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add registers addr to be bound by StartAll, serviced by h. It errors
// if StartAll has already run or addr is already registered.
func (s *Set) Add(addr string, h HandlerFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return liberr.New(uint16(ErrAlreadyStarted), "listener: set already started")
	}

	for _, e := range s.entries {
		if e.addr == addr {
			return liberr.New(uint16(ErrDuplicateAddr), "listener: duplicate address "+addr)
		}
	}

	s.entries = append(s.entries, &boundAddr{addr: addr, handler: h})
	return nil
}

// StartAll binds every registered address and runs an accept loop for
// each on its own goroutine. Accepted connections are wrapped in a
// conn.Conn and handed to their address's HandlerFunc on a further
// goroutine each - one goroutine per connection, the native-concurrency
// reading of what used to be a coroutine resumed by the scheduler
// bridge. b's Hooks are stamped onto the context every handler
// goroutine receives, so a handler can still reach ResumeThread /
// StartRequestThread / RunReadyThreads without a direct dependency on
// *sched.Bridge.
func (s *Set) StartAll(ctx context.Context, b *sched.Bridge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	if b != nil {
		runCtx = sched.WithHooks(runCtx, b.Hooks())
	}

	bound := make([]*boundAddr, 0, len(s.entries))
	for _, e := range s.entries {
		ln, err := net.Listen("tcp", e.addr)
		if err != nil {
			for _, done := range bound {
				_ = done.ln.Close()
			}
			cancel()
			return liberr.New(uint16(ErrListenFailed), "listener: bind "+e.addr+" failed", err)
		}
		e.ln = ln
		bound = append(bound, e)
	}

	s.cancel = cancel
	s.started = true

	for _, e := range bound {
		s.wg.Add(1)
		go s.acceptLoop(runCtx, e)
	}

	return nil
}

func (s *Set) acceptLoop(ctx context.Context, e *boundAddr) {
	defer s.wg.Done()

	for {
		nc, err := e.ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				return
			}
		}

		c := conn.New(nc, conn.Config{})
		_ = c.StartReading()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer c.Close()
			e.handler(ctx, c)
		}()
	}
}

// CloseAll stops every accept loop, closes every bound listener and
// waits for in-flight connection handlers to return.
func (s *Set) CloseAll() error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}

	if s.cancel != nil {
		s.cancel()
	}

	var firstErr error
	for _, e := range s.entries {
		if e.ln == nil {
			continue
		}
		if err := e.ln.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.mu.Unlock()

	s.wg.Wait()
	return firstErr
}
