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
	"context"
	"crypto/tls"
	"net"
	"sync/atomic"
	"time"
)

// connConn is the minimal surface a server-side connection needs, satisfied
// by both net.Conn and the synthetic peerConn used for packet protocols.
type connConn interface {
	net.Conn
}

// connContext adapts one accepted connection into libsck.Context, enforcing
// an optional idle timeout and tracking whether it's still open.
type connContext struct {
	context.Context

	cnl    context.CancelFunc
	conn   connConn
	idle   time.Duration
	closed atomic.Bool
}

func newConnContext(parent context.Context, conn connConn, idle time.Duration) *connContext {
	cctx, cnl := context.WithCancel(parent)
	return &connContext{
		Context: cctx,
		cnl:     cnl,
		conn:    conn,
		idle:    idle,
	}
}

func (o *connContext) IsConnected() bool {
	return !o.closed.Load()
}

func (o *connContext) LocalHost() net.Addr {
	return o.conn.LocalAddr()
}

func (o *connContext) RemoteHost() net.Addr {
	return o.conn.RemoteAddr()
}

func (o *connContext) Read(p []byte) (int, error) {
	if o.idle > 0 {
		_ = o.conn.SetReadDeadline(time.Now().Add(o.idle))
	}

	n, err := o.conn.Read(p)
	if err != nil {
		o.closed.Store(true)
	}
	return n, err
}

func (o *connContext) Write(p []byte) (int, error) {
	n, err := o.conn.Write(p)
	if err != nil {
		o.closed.Store(true)
	}
	return n, err
}

func (o *connContext) Close() error {
	o.closed.Store(true)
	o.cnl()
	return o.conn.Close()
}

func tlsListenFunc(network, address string, cfg *tls.Config) (net.Listener, error) {
	return tls.Listen(network, address, cfg)
}
