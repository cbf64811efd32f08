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

// Package config holds the configuration structs accepted by socket/client
// and socket/server constructors.
package config

import (
	"crypto/tls"
	"errors"
	"runtime"

	libptc "github.com/nabbar/luaw-server/network/protocol"
)

// ErrInvalidProtocol is returned when a Client or Server config names a
// NetworkProtocol this package does not know how to dial or listen on.
var ErrInvalidProtocol = errors.New("socket/config: invalid or unsupported network protocol")

// ErrEmptyAddress is returned when a Client or Server config has no Address.
var ErrEmptyAddress = errors.New("socket/config: empty address")

// TLSClient configures optional TLS for a socket/client connection.
type TLSClient struct {
	Enabled            bool
	ServerName         string
	InsecureSkipVerify bool
	RootCAFiles        []string
}

// Config builds a *tls.Config from this TLSClient, or nil if TLS is disabled.
func (t TLSClient) Config() (*tls.Config, error) {
	if !t.Enabled {
		return nil, nil
	}

	cfg := &tls.Config{
		ServerName:         t.ServerName,
		InsecureSkipVerify: t.InsecureSkipVerify,
	}

	if len(t.RootCAFiles) > 0 {
		pool, err := loadRootCAs(t.RootCAFiles)
		if err != nil {
			return nil, err
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}

// Client is the configuration accepted by socket/client.New.
type Client struct {
	Network libptc.NetworkProtocol
	Address string
	TLS     TLSClient
}

// Validate checks that Network is a known, dialable protocol and Address is
// non-empty.
func (c Client) Validate() error {
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
