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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nabbar/luaw-server/config"
	"github.com/nabbar/luaw-server/dnsresolve"
	liberr "github.com/nabbar/luaw-server/errors"
	libprm "github.com/nabbar/luaw-server/file/perm"
	"github.com/nabbar/luaw-server/listener"
	"github.com/nabbar/luaw-server/logger"
	logcfg "github.com/nabbar/luaw-server/logger/config"
	"github.com/nabbar/luaw-server/monitor"
	"github.com/nabbar/luaw-server/reactor"
	"github.com/nabbar/luaw-server/sched"
)

// Server bundles one loaded configuration with every component it
// drives: the log, the DNS resolver, the scheduler bridge and its
// reactor, the listener set and, when configured, the metrics registry.
type Server struct {
	cfg       *config.Config
	log       logger.Logger
	resolver  *dnsresolve.Resolver
	bridge    *sched.Bridge
	reactor   *reactor.Reactor
	listeners *listener.Set
	metrics   *monitor.Registry
	ioTimeout time.Duration
}

// New loads the configuration table from paths (merged in order, first
// one primary) and wires every component. It does not bind any socket -
// that happens inside Run - so a caller can inspect or test a Server
// without opening a port.
func New(paths ...string) (*Server, error) {
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, liberr.New(uint16(ErrConfigLoad), "app: loading configuration failed", err)
	}

	log := logger.New(context.Background())
	if err = applyLoggerOptions(log, cfg); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		log:       log,
		bridge:    sched.NewBridge(),
		ioTimeout: cfg.IOTimeoutDuration(),
	}
	s.reactor = reactor.New(s.bridge, tickInterval)

	if len(cfg.DNSNameservers) > 0 {
		s.resolver = dnsresolve.NewResolver(cfg.DNSNameservers)
	}

	if cfg.MetricsListen != "" {
		s.metrics = monitor.New()
	}

	s.listeners = listener.NewSet()
	if err = s.listeners.Add(cfg.Addr(), s.serveConnection); err != nil {
		return nil, liberr.New(uint16(ErrListenerBind), "app: registering listener failed", err)
	}

	return s, nil
}

// applyLoggerOptions translates the loaded configuration's log-file and
// syslog fields into the logcfg.Options shape logger.Logger.SetOptions
// expects, leaving either sink absent when its configuration field is
// empty.
func applyLoggerOptions(log logger.Logger, cfg *config.Config) error {
	opt := &logcfg.Options{}

	if cfg.LogFilePath != "" {
		opt.LogFile = logcfg.OptionsFiles{
			{
				Filepath:   cfg.LogFilePath,
				Create:     true,
				CreatePath: true,
				FileMode:   libprm.ParseFileMode(os.FileMode(cfg.LogFileMode)),
			},
		}
	}

	if cfg.SyslogAddress != "" {
		opt.LogSyslog = logcfg.OptionsSyslogs{
			{
				Network: cfg.SyslogNetwork,
				Host:    cfg.SyslogAddress,
				Tag:     "luaw-server",
			},
		}
	}

	if err := log.SetOptions(opt); err != nil {
		return liberr.New(uint16(ErrLoggerOptions), "app: applying logger options failed", err)
	}
	return nil
}

// Run starts the reactor and every registered listener, then blocks
// until ctx is cancelled or the process receives SIGHUP, whichever
// comes first, and shuts everything back down before returning. A nil
// error means a clean shutdown; a non-nil one means a component failed
// to start.
func (s *Server) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.reactor.Start(runCtx); err != nil {
		return err
	}
	defer func() { _ = s.reactor.Stop(context.Background()) }()

	if err := s.listeners.StartAll(runCtx, s.bridge); err != nil {
		return err
	}
	defer func() { _ = s.listeners.CloseAll() }()

	metricsErr := make(chan error, 1)
	if s.metrics != nil {
		go func() {
			metricsErr <- s.metrics.ListenAndServe(runCtx, s.cfg.MetricsListen)
		}()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP)
	defer signal.Stop(sig)

	select {
	case <-sig:
		s.log.Info("received SIGHUP, shutting down", nil)
	case <-runCtx.Done():
	case err := <-metricsErr:
		cancel()
		return err
	}

	cancel()
	if s.metrics != nil {
		<-metricsErr
	}

	return nil
}
