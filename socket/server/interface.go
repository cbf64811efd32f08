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

// Package server implements socket.Server for tcp, udp, unix and unixgram,
// dispatching each accepted connection (or, for packet protocols, each
// distinct peer) to a socket.HandlerFunc.
package server

import (
	"crypto/tls"
	"net"
	"os"
	"sync"

	libptc "github.com/nabbar/luaw-server/network/protocol"
	libsck "github.com/nabbar/luaw-server/socket"
	sckcfg "github.com/nabbar/luaw-server/socket/config"
)

// New validates cfg and returns a Server bound to its Network/Address.
// tlsCfg overrides cfg.TLS's derived *tls.Config when non-nil; it is only
// meaningful for stream protocols (tcp/unix).
func New(tlsCfg *tls.Config, h libsck.HandlerFunc, cfg sckcfg.Server) (libsck.Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if h == nil {
		h = func(libsck.Context) {}
	}

	if tlsCfg == nil {
		var err error
		tlsCfg, err = cfg.TLS.Config()
		if err != nil {
			return nil, err
		}
	}

	if cfg.BufferSize <= 0 {
		cfg.BufferSize = libsck.DefaultBufferSize
	}

	return &srvState{
		cfg: cfg,
		tls: tlsCfg,
		hdl: h,
	}, nil
}

type srvState struct {
	mu  sync.Mutex
	cfg sckcfg.Server
	tls *tls.Config
	hdl libsck.HandlerFunc
	fe  libsck.FuncError
	fi  libsck.FuncInfo

	closed  bool
	closeFn func() error
}

func (o *srvState) RegisterFuncError(f libsck.FuncError) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fe = f
}

func (o *srvState) RegisterFuncInfo(f libsck.FuncInfo) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fi = f
}

func (o *srvState) reportError(err error) {
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

func (o *srvState) reportInfo(local, remote net.Addr, state libsck.ConnState) {
	o.mu.Lock()
	f := o.fi
	o.mu.Unlock()

	if f != nil {
		f(local, remote, state)
	}
}

func isUnixFamily(p libptc.NetworkProtocol) bool {
	return p == libptc.NetworkUnix || p == libptc.NetworkUnixGram
}

func cleanupUnixSocket(address string) {
	_ = os.Remove(address)
}
