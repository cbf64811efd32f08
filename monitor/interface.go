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

// Package monitor exposes the server's runtime gauges and counters on
// a Prometheus registry of their own, independent of the default
// global registry, so a process embedding this package never collides
// with another component's metric names.
package monitor

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nabbar/luaw-server/errors"
)

const (
	// ErrServe wraps an http.Server failure other than http.ErrServerClosed.
	ErrServe errors.CodeError = iota + 1
)

// Registry bundles every metric this server reports, named per
// SPEC_FULL.md's monitor table.
type Registry struct {
	reg *prometheus.Registry

	ConnectionsOpen      prometheus.Gauge
	ConnectionsTotal     prometheus.Counter
	TimerActive          prometheus.Gauge
	SchedReadyQueueDepth prometheus.Gauge
	HTTPRequestsTotal    *prometheus.CounterVec
}

// New builds a Registry with every metric created and registered.
func New() *Registry {
	reg := prometheus.NewRegistry()

	m := &Registry{
		reg: reg,
		ConnectionsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "luaw_connections_open",
			Help: "Number of currently open connections.",
		}),
		ConnectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "luaw_connections_total",
			Help: "Total number of connections accepted since startup.",
		}),
		TimerActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "luaw_timer_active",
			Help: "Number of timers currently armed.",
		}),
		SchedReadyQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "luaw_sched_ready_queue_depth",
			Help: "Number of scheduler threads currently runnable.",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "luaw_http_requests_total",
			Help: "Total HTTP requests handled, by method and status.",
		}, []string{"method", "status"}),
	}

	reg.MustRegister(
		m.ConnectionsOpen,
		m.ConnectionsTotal,
		m.TimerActive,
		m.SchedReadyQueueDepth,
		m.HTTPRequestsTotal,
	)

	return m
}

// Handler returns the /metrics HTTP handler for this Registry.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// ListenAndServe binds addr and serves Handler at /metrics until ctx
// is cancelled, at which point it shuts the server down gracefully.
func (m *Registry) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.New(uint16(ErrServe), "monitor: metrics server failed", err)
		}
		return nil
	}
}
