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

package dnsresolve

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/miekg/dns"

	liberr "github.com/nabbar/luaw-server/errors"
)

// Resolver resolves hostnames against a fixed, ordered set of
// nameservers, trying each in turn until one answers.
type Resolver struct {
	client      *dns.Client
	nameservers []string
	next        atomic.Uint32
}

// NewResolver returns a Resolver querying the given nameservers
// ("host:port" or bare host, in which case port 53 is assumed), tried
// round-robin across successive Resolve calls.
func NewResolver(nameservers []string) *Resolver {
	addrs := make([]string, 0, len(nameservers))
	for _, ns := range nameservers {
		if _, _, err := net.SplitHostPort(ns); err != nil {
			ns = net.JoinHostPort(ns, "53")
		}
		addrs = append(addrs, ns)
	}

	return &Resolver{
		client:      &dns.Client{Timeout: 5 * time.Second},
		nameservers: addrs,
	}
}

// Resolve returns the first A record found for hostname, trying each
// configured nameserver in round-robin order starting from a different
// offset on every call. It returns ErrNoSuchHost if every nameserver
// answered without an A record, or ErrAllNameserversFailed if every
// query itself failed (timeout, refused, network error).
func (r *Resolver) Resolve(ctx context.Context, hostname string) (string, error) {
	if len(r.nameservers) == 0 {
		return "", liberr.New(uint16(ErrNoNameservers), "dnsresolve: no nameservers configured")
	}

	start := int(r.next.Add(1)-1) % len(r.nameservers)

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(hostname), dns.TypeA)
	m.RecursionDesired = true

	var lastErr error
	sawAnswer := false

	for i := 0; i < len(r.nameservers); i++ {
		ns := r.nameservers[(start+i)%len(r.nameservers)]

		resp, _, err := r.client.ExchangeContext(ctx, m, ns)
		if err != nil {
			lastErr = err
			continue
		}
		sawAnswer = true

		if ip := firstA(resp); ip != "" {
			return ip, nil
		}
	}

	if sawAnswer {
		return "", liberr.New(uint16(ErrNoSuchHost), "dnsresolve: no A record for "+hostname)
	}
	return "", liberr.New(uint16(ErrAllNameserversFailed), "dnsresolve: all nameservers failed", lastErr)
}

func firstA(resp *dns.Msg) string {
	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			return a.A.String()
		}
	}
	return ""
}
