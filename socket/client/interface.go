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

// Package client implements socket.Client for tcp, tcp4, tcp6, udp, udp4,
// udp6, unix and unixgram, dialing lazily on the first Connect call.
package client

import (
	"crypto/tls"
	"sync"

	libsck "github.com/nabbar/luaw-server/socket"
	sckcfg "github.com/nabbar/luaw-server/socket/config"
)

// New validates cfg and returns a Client that dials lazily on Connect. tlsCfg
// overrides cfg.TLS's derived *tls.Config when non-nil.
func New(cfg sckcfg.Client, tlsCfg *tls.Config) (libsck.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if tlsCfg == nil {
		var err error
		tlsCfg, err = cfg.TLS.Config()
		if err != nil {
			return nil, err
		}
	}

	return &cltState{
		cfg: cfg,
		tls: tlsCfg,
	}, nil
}

type cltState struct {
	mu  sync.Mutex
	cfg sckcfg.Client
	tls *tls.Config
	c   netConn
	fe  libsck.FuncError
	fi  libsck.FuncInfo
}
