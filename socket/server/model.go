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
	"net"
	"os"
	"sync"

	libptc "github.com/nabbar/luaw-server/network/protocol"
	libsck "github.com/nabbar/luaw-server/socket"
)

// Listen binds (if needed) and serves until ctx is canceled or Close/Shutdown
// is called. Stream protocols (tcp/unix) accept one net.Conn per client;
// packet protocols (udp/unixgram) demultiplex datagrams by peer address into
// one synthetic Context per peer.
func (o *srvState) Listen(ctx context.Context) error {
	switch o.cfg.Network {
	case libptc.NetworkTCP, libptc.NetworkTCP4, libptc.NetworkTCP6, libptc.NetworkUnix:
		return o.listenStream(ctx)
	case libptc.NetworkUDP, libptc.NetworkUDP4, libptc.NetworkUDP6, libptc.NetworkUnixGram:
		return o.listenPacket(ctx)
	default:
		return net.ErrClosed
	}
}

func (o *srvState) listenStream(ctx context.Context) error {
	if isUnixFamily(o.cfg.Network) {
		cleanupUnixSocket(o.cfg.Address)
	}

	var (
		ln  net.Listener
		err error
	)

	if o.tls != nil {
		ln, err = tlsListenFunc(o.cfg.Network.Code(), o.cfg.Address, o.tls)
	} else {
		ln, err = net.Listen(o.cfg.Network.Code(), o.cfg.Address)
	}
	if err != nil {
		return err
	}

	if isUnixFamily(o.cfg.Network) && o.cfg.PermFile != 0 {
		_ = os.Chmod(o.cfg.Address, os.FileMode(o.cfg.PermFile))
	}

	o.mu.Lock()
	o.closeFn = ln.Close
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		c, err := ln.Accept()
		if err != nil {
			o.reportError(err)
			return libsck.ErrorFilter(err)
		}

		o.reportInfo(c.LocalAddr(), c.RemoteAddr(), libsck.ConnectionNew)

		wg.Add(1)
		go func(conn net.Conn) {
			defer wg.Done()
			defer o.reportInfo(conn.LocalAddr(), conn.RemoteAddr(), libsck.ConnectionClose)

			cctx := newConnContext(ctx, conn, o.cfg.ConIdleTimeout)
			o.hdl(cctx)
			_ = conn.Close()
		}(c)
	}
}

func (o *srvState) listenPacket(ctx context.Context) error {
	if isUnixFamily(o.cfg.Network) {
		cleanupUnixSocket(o.cfg.Address)
	}

	pc, err := net.ListenPacket(o.cfg.Network.Code(), o.cfg.Address)
	if err != nil {
		return err
	}

	if isUnixFamily(o.cfg.Network) && o.cfg.PermFile != 0 {
		_ = os.Chmod(o.cfg.Address, os.FileMode(o.cfg.PermFile))
	}

	o.mu.Lock()
	o.closeFn = pc.Close
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = pc.Close()
	}()

	peers := newPeerTable(pc, o.cfg.BufferSize)

	var wg sync.WaitGroup
	defer wg.Wait()

	buf := make([]byte, o.cfg.BufferSize)

	for {
		n, addr, err := pc.ReadFrom(buf)
		if err != nil {
			o.reportError(err)
			return libsck.ErrorFilter(err)
		}

		p, isNew := peers.get(addr)
		p.push(buf[:n])

		if isNew {
			o.reportInfo(pc.LocalAddr(), addr, libsck.ConnectionNew)

			wg.Add(1)
			go func(pr *peerConn) {
				defer wg.Done()
				defer peers.delete(pr.addr)
				defer o.reportInfo(pc.LocalAddr(), pr.addr, libsck.ConnectionClose)

				cctx := newConnContext(ctx, pr, o.cfg.ConIdleTimeout)
				o.hdl(cctx)
			}(p)
		}
	}
}

func (o *srvState) Shutdown(ctx context.Context) error {
	return o.Close()
}

func (o *srvState) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true

	if o.closeFn != nil {
		return o.closeFn()
	}

	return nil
}
