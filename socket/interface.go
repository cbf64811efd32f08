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

// Package socket defines the Client/Server/Context contracts shared by every
// transport implementation under socket/client and socket/server: tcp, udp,
// unix and unixgram, with or without TLS.
package socket

import (
	"context"
	"net"
	"strings"
)

// DefaultBufferSize is the read buffer size used by servers that don't
// configure their own.
const DefaultBufferSize = 32 * 1024

// EOL is the line terminator used by line-oriented handlers.
const EOL = '\n'

// ConnState describes where a connection is in its lifecycle, reported to a
// registered FuncInfo.
type ConnState uint8

const (
	ConnectionDial ConnState = iota
	ConnectionNew
	ConnectionRead
	ConnectionCloseRead
	ConnectionHandler
	ConnectionWrite
	ConnectionCloseWrite
	ConnectionClose
)

func (s ConnState) String() string {
	switch s {
	case ConnectionDial:
		return "Dial Connection"
	case ConnectionNew:
		return "New Connection"
	case ConnectionRead:
		return "Read Incoming Stream"
	case ConnectionCloseRead:
		return "Close Incoming Stream"
	case ConnectionHandler:
		return "Run HandlerFunc"
	case ConnectionWrite:
		return "Write Outgoing Steam"
	case ConnectionCloseWrite:
		return "Close Outgoing Stream"
	case ConnectionClose:
		return "Close Connection"
	default:
		return "unknown connection state"
	}
}

// FuncError receives asynchronous errors encountered by a Client or Server.
type FuncError func(errs ...error)

// FuncInfo receives connection state transitions.
type FuncInfo func(local, remote net.Addr, state ConnState)

// HandlerFunc processes one accepted connection. It must return for the
// server to reclaim the connection's resources.
type HandlerFunc func(ctx Context)

// ErrorFilter drops errors that are the expected consequence of a socket
// being closed out from under a blocking Read/Write/Accept, so callers don't
// have to special-case shutdown races themselves.
func ErrorFilter(err error) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "use of closed network connection") {
		return nil
	}

	return err
}

// Context is handed to a HandlerFunc for one accepted connection.
type Context interface {
	context.Context

	IsConnected() bool
	LocalHost() net.Addr
	RemoteHost() net.Addr
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// Client is a connection to a remote endpoint over one of the supported
// network protocols. Connect is idempotent: calling it while already
// connected is a no-op. Write reconnects are the caller's responsibility;
// Client itself never reconnects silently.
type Client interface {
	RegisterFuncError(f FuncError)
	RegisterFuncInfo(f FuncInfo)

	Connect(ctx context.Context) error
	IsConnected() bool
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// Server accepts connections on one network protocol and dispatches each to
// a HandlerFunc until Close/Shutdown is called or its Listen context ends.
type Server interface {
	RegisterFuncError(f FuncError)
	RegisterFuncInfo(f FuncInfo)

	Listen(ctx context.Context) error
	Shutdown(ctx context.Context) error
	Close() error
}
