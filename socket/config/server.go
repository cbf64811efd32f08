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

package config

import (
	"crypto/tls"
	"runtime"
	"time"

	libprm "github.com/nabbar/luaw-server/file/perm"
	libptc "github.com/nabbar/luaw-server/network/protocol"
)

// TLSServer configures optional TLS termination for a socket/server listener.
type TLSServer struct {
	Enabled     bool
	CertFile    string
	KeyFile     string
	ClientCAs   []string
	RequireAuth bool
}

// Config builds a *tls.Config from this TLSServer, or nil if TLS is disabled.
func (t TLSServer) Config() (*tls.Config, error) {
	if !t.Enabled {
		return nil, nil
	}

	crt, err := tls.LoadX509KeyPair(t.CertFile, t.KeyFile)
	if err != nil {
		return nil, err
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{crt},
	}

	if len(t.ClientCAs) > 0 {
		pool, err := loadRootCAs(t.ClientCAs)
		if err != nil {
			return nil, err
		}
		cfg.ClientCAs = pool

		if t.RequireAuth {
			cfg.ClientAuth = tls.RequireAndVerifyClientCert
		} else {
			cfg.ClientAuth = tls.VerifyClientCertIfGiven
		}
	}

	return cfg, nil
}

// Server is the configuration accepted by socket/server.New.
type Server struct {
	Network        libptc.NetworkProtocol
	Address        string
	TLS            TLSServer
	ConIdleTimeout time.Duration
	BufferSize     int

	// PermFile/GroupPerm apply to unix/unixgram socket files only.
	PermFile  libprm.Perm
	GroupPerm int
}

// Validate checks that Network is a known, listenable protocol and Address
// is non-empty.
func (c Server) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	switch c.Network {
	case libptc.NetworkTCP, libptc.NetworkTCP4, libptc.NetworkTCP6,
		libptc.NetworkUDP, libptc.NetworkUDP4, libptc.NetworkUDP6:
		return nil
	case libptc.NetworkUnix, libptc.NetworkUnixGram:
		if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
			return ErrInvalidProtocol
		}
		return nil
	default:
		return ErrInvalidProtocol
	}
}
