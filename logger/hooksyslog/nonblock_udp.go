//go:build linux || darwin

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

package hooksyslog

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// _NonBlockUDP sends syslog datagrams over a raw, non-blocking UDP
// socket: every Sendto carries unix.MSG_DONTWAIT, so a congested or
// unreachable collector never stalls the caller - a dropped datagram
// is reported back as an error instead of blocking, matching the
// fire-and-forget contract a cooperative reactor loop requires from its
// logging sink.
type _NonBlockUDP struct {
	fd  int
	sa  unix.Sockaddr
	tag string
}

func newNonBlockUDP(host, tag string) (Wrapper, error) {
	ip, port, err := resolveUDP4(host)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, unix.IPPROTO_UDP)
	if err != nil {
		return nil, fmt.Errorf("hooksyslog: opening non-blocking udp socket: %w", err)
	}

	if err = unix.SetNonblock(fd, true); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("hooksyslog: setting non-blocking udp socket: %w", err)
	}

	var addr [4]byte
	copy(addr[:], ip.To4())

	return &_NonBlockUDP{
		fd: fd,
		sa: &unix.SockaddrInet4{Port: port, Addr: addr},
		tag: func() string {
			if tag == "" {
				return fmt.Sprintf("luaw-server[%d]", os.Getpid())
			}
			return tag
		}(),
	}, nil
}

func resolveUDP4(host string) (net.IP, int, error) {
	addr, err := net.ResolveUDPAddr("udp4", host)
	if err != nil {
		return nil, 0, fmt.Errorf("hooksyslog: resolving syslog udp address %q: %w", host, err)
	}
	return addr.IP, addr.Port, nil
}

func (o *_NonBlockUDP) send(prio _pri, p []byte) (n int, err error) {
	msg := fmt.Sprintf("<%d>%s: %s", prio, o.tag, p)

	if err = unix.Sendto(o.fd, []byte(msg), unix.MSG_DONTWAIT, o.sa); err != nil {
		return 0, fmt.Errorf("hooksyslog: non-blocking udp send: %w", err)
	}
	return len(p), nil
}

type _pri int

func (o *_NonBlockUDP) Write(p []byte) (n int, err error) {
	return o.send(_pri(makePriority(SyslogSeverityInfo, FacilityUser)), p)
}

func (o *_NonBlockUDP) Close() error {
	return unix.Close(o.fd)
}

func (o *_NonBlockUDP) Panic(p []byte) (n int, err error) {
	return o.send(_pri(makePriority(SyslogSeverityAlert, FacilityUser)), p)
}

func (o *_NonBlockUDP) Fatal(p []byte) (n int, err error) {
	return o.send(_pri(makePriority(SyslogSeverityCrit, FacilityUser)), p)
}

func (o *_NonBlockUDP) Error(p []byte) (n int, err error) {
	return o.send(_pri(makePriority(SyslogSeverityErr, FacilityUser)), p)
}

func (o *_NonBlockUDP) Warning(p []byte) (n int, err error) {
	return o.send(_pri(makePriority(SyslogSeverityWarning, FacilityUser)), p)
}

func (o *_NonBlockUDP) Info(p []byte) (n int, err error) {
	return o.send(_pri(makePriority(SyslogSeverityInfo, FacilityUser)), p)
}

func (o *_NonBlockUDP) Debug(p []byte) (n int, err error) {
	return o.send(_pri(makePriority(SyslogSeverityDebug, FacilityUser)), p)
}
