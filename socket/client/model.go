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

package client

import (
	"context"
	"crypto/tls"
	"net"

	libptc "github.com/nabbar/luaw-server/network/protocol"
	libsck "github.com/nabbar/luaw-server/socket"
)

// netConn is the live net.Conn plus a connected flag, swapped atomically by
// Connect/Close so concurrent Read/Write/IsConnected never see a half-built
// state.
type netConn struct {
	c net.Conn
}

func (o *cltState) RegisterFuncError(f libsck.FuncError) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fe = f
}

func (o *cltState) RegisterFuncInfo(f libsck.FuncInfo) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fi = f
}

func (o *cltState) reportError(err error) {
	if err = libsck.ErrorFilter(err); err == nil {
		return
	}

	o.mu.Lock()
	f := o.fe
	o.mu.Unlock()

	if f != nil {
		f(err)
	}
}

func (o *cltState) reportInfo(state libsck.ConnState) {
	o.mu.Lock()
	f := o.fi
	c := o.c.c
	o.mu.Unlock()

	if f == nil || c == nil {
		return
	}

	f(c.LocalAddr(), c.RemoteAddr(), state)
}

func dial(ctx context.Context, ptc libptc.NetworkProtocol, address string, tlsCfg *tls.Config) (net.Conn, error) {
	d := &net.Dialer{}

	if tlsCfg != nil {
		td := &tls.Dialer{NetDialer: d, Config: tlsCfg}
		return td.DialContext(ctx, ptc.Code(), address)
	}

	return d.DialContext(ctx, ptc.Code(), address)
}

func (o *cltState) Connect(ctx context.Context) error {
	o.mu.Lock()
	if o.c.c != nil {
		o.mu.Unlock()
		return nil
	}
	o.mu.Unlock()

	c, err := dial(ctx, o.cfg.Network, o.cfg.Address, o.tls)
	if err != nil {
		o.reportError(err)
		return err
	}

	o.mu.Lock()
	o.c.c = c
	o.mu.Unlock()

	o.reportInfo(libsck.ConnectionDial)
	return nil
}

func (o *cltState) IsConnected() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.c.c != nil
}

func (o *cltState) Read(p []byte) (int, error) {
	o.mu.Lock()
	c := o.c.c
	o.mu.Unlock()

	if c == nil {
		return 0, net.ErrClosed
	}

	n, err := c.Read(p)
	if err != nil {
		o.reportError(err)
		o.clearOnError()
	}

	return n, err
}

func (o *cltState) Write(p []byte) (int, error) {
	o.mu.Lock()
	c := o.c.c
	o.mu.Unlock()

	if c == nil {
		return 0, net.ErrClosed
	}

	n, err := c.Write(p)
	if err != nil {
		o.reportError(err)
		o.clearOnError()
	}

	return n, err
}

func (o *cltState) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.c.c == nil {
		return nil
	}

	err := o.c.c.Close()
	o.c.c = nil
	return err
}

func (o *cltState) clearOnError() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.c.c != nil {
		_ = o.c.c.Close()
		o.c.c = nil
	}
}
