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

package server

import (
	"errors"
	"net"
	"sync"
	"time"
)

// peerConn adapts one demultiplexed datagram peer of a net.PacketConn into a
// net.Conn, so it can be driven through the same connContext as a stream
// connection. Each datagram read off the shared PacketConn for this peer is
// pushed onto an internal queue; Write goes straight back out via WriteTo.
type peerConn struct {
	pc   net.PacketConn
	addr net.Addr

	mu     sync.Mutex
	cond   *sync.Cond
	queue  [][]byte
	closed bool
}

func newPeerConn(pc net.PacketConn, addr net.Addr) *peerConn {
	p := &peerConn{pc: pc, addr: addr}
	p.cond = sync.NewCond(&p.mu)
	return p
}

func (p *peerConn) push(b []byte) {
	cp := make([]byte, len(b))
	copy(cp, b)

	p.mu.Lock()
	p.queue = append(p.queue, cp)
	p.mu.Unlock()
	p.cond.Signal()
}

func (p *peerConn) Read(b []byte) (int, error) {
	p.mu.Lock()
	for len(p.queue) == 0 && !p.closed {
		p.cond.Wait()
	}

	if len(p.queue) == 0 && p.closed {
		p.mu.Unlock()
		return 0, errors.New("socket/server: peer connection closed")
	}

	next := p.queue[0]
	p.queue = p.queue[1:]
	p.mu.Unlock()

	n := copy(b, next)
	return n, nil
}

func (p *peerConn) Write(b []byte) (int, error) {
	return p.pc.WriteTo(b, p.addr)
}

func (p *peerConn) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	return nil
}

func (p *peerConn) LocalAddr() net.Addr  { return p.pc.LocalAddr() }
func (p *peerConn) RemoteAddr() net.Addr { return p.addr }

func (p *peerConn) SetDeadline(t time.Time) error     { return nil }
func (p *peerConn) SetReadDeadline(t time.Time) error  { return nil }
func (p *peerConn) SetWriteDeadline(t time.Time) error { return nil }

// peerTable demultiplexes a shared net.PacketConn into one peerConn per
// distinct remote address.
type peerTable struct {
	pc  net.PacketConn
	buf int

	mu sync.Mutex
	m  map[string]*peerConn
}

func newPeerTable(pc net.PacketConn, bufSize int) *peerTable {
	return &peerTable{pc: pc, buf: bufSize, m: make(map[string]*peerConn)}
}

func (t *peerTable) get(addr net.Addr) (*peerConn, bool) {
	key := addr.String()

	t.mu.Lock()
	defer t.mu.Unlock()

	if p, ok := t.m[key]; ok {
		return p, false
	}

	p := newPeerConn(t.pc, addr)
	t.m[key] = p
	return p, true
}

func (t *peerTable) delete(addr net.Addr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.m, addr.String())
}
