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

package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nabbar/luaw-server/buffer"
	"github.com/nabbar/luaw-server/conn"
	"github.com/nabbar/luaw-server/httpparser"
)

// serveConnection is the listener.HandlerFunc bound to every address
// this Server registers. It drives one buffer and one httpparser.Driver
// for the connection's whole lifetime, answering each parsed request
// with a fixed body and honoring HTTP/1.x keep-alive and pipelining
// before returning - at which point listener.Set closes the connection.
func (s *Server) serveConnection(ctx context.Context, c *conn.Conn) {
	if s.metrics != nil {
		s.metrics.ConnectionsTotal.Inc()
		s.metrics.ConnectionsOpen.Inc()
		defer s.metrics.ConnectionsOpen.Dec()
	}

	buf := buffer.New(s.cfg.ConnectionBufferSize)
	d := httpparser.NewDriver(httpparser.Request)

	for {
		host, err := s.readRequest(ctx, c, buf, d)
		if err != nil {
			return
		}

		s.resolveHostAsync(host)

		if s.metrics != nil {
			s.metrics.HTTPRequestsTotal.WithLabelValues(d.Method(), "200").Inc()
		}

		if err = s.writeResponse(ctx, c, d); err != nil {
			return
		}

		if !d.ShouldKeepAlive() {
			return
		}

		d.Reset()
		if buf.RemainingContentLen() == 0 {
			buf.Clear()
		}
	}
}

// readRequest drains d until it reports the message complete, reading
// more bytes from c whenever the buffer doesn't yet hold a full token,
// and returns the request's Host header value (empty if absent).
func (s *Server) readRequest(ctx context.Context, c *conn.Conn, buf *buffer.Buffer, d *httpparser.Driver) (string, error) {
	var (
		host      string
		lastField string
	)

	for {
		tag, err := d.Parse(buf)
		if err != nil {
			return "", err
		}

		switch tag {
		case httpparser.TagHeaderField:
			lastField = strings.ToLower(string(d.ParsedChunk()))
		case httpparser.TagHeaderValue:
			if lastField == "host" {
				host = string(d.ParsedChunk())
			}
		case httpparser.TagMessageComplete:
			return host, nil
		case httpparser.TagNone:
			if buf.RemainingCapacity() == 0 {
				return "", conn.ErrBufferFull
			}
			if _, err = c.Read(ctx, buf, s.ioTimeout); err != nil {
				return "", err
			}
			s.reactor.Tick()
		}
	}
}

// resolveHostAsync best-effort resolves a request's Host header through
// the configured nameservers without blocking the response - it exists
// to exercise dnsresolve.Resolver from the request path exactly as a
// reverse proxy in front of this core would need to, logging the
// outcome rather than acting on it, since routing by resolved address
// is outside this module's scope.
func (s *Server) resolveHostAsync(host string) {
	if s.resolver == nil || host == "" {
		return
	}

	hostname := host
	if idx := strings.LastIndexByte(hostname, ':'); idx >= 0 {
		hostname = hostname[:idx]
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.ioTimeout)
		defer cancel()

		addr, err := s.resolver.Resolve(ctx, hostname)
		if err != nil {
			s.log.Debug("host header resolution failed for %q: %s", nil, hostname, err)
			return
		}
		s.log.Debug("resolved host header %q to %s", nil, hostname, addr)
	}()
}

// writeResponse answers the just-parsed request with a fixed, minimal
// body - this core ships no routing or handler registration of its own,
// only the transport and protocol machinery spec.md names as modules.
func (s *Server) writeResponse(ctx context.Context, c *conn.Conn, d *httpparser.Driver) error {
	body := []byte("luaw-server\n")

	connState := "close"
	if d.ShouldKeepAlive() {
		connState = "keep-alive"
	}

	head := fmt.Sprintf(
		"HTTP/%d.%d 200 OK\r\nContent-Length: %s\r\nConnection: %s\r\n\r\n",
		d.HTTPMajor(), d.HTTPMinor(), strconv.Itoa(len(body)), connState,
	)

	if _, err := c.Write(ctx, []byte(head), s.ioTimeout, false); err != nil {
		return err
	}

	_, err := c.Write(ctx, body, s.ioTimeout, false)
	s.reactor.Tick()
	return err
}
