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

// Package config loads the server's configuration table from one or
// more YAML/TOML/JSON files (whichever extension Viper recognizes),
// merged in the order given on the command line, with an optional
// filesystem watch that re-loads and re-validates the table whenever
// the primary file changes.
package config

import (
	"strconv"
	"time"

	"github.com/nabbar/luaw-server/duration"
	"github.com/nabbar/luaw-server/errors"
)

const (
	// ErrNoConfigFile is returned by Load when called with no paths.
	ErrNoConfigFile errors.CodeError = iota + 1

	// ErrReadConfigFile wraps a Viper read/merge failure.
	ErrReadConfigFile

	// ErrDecodeConfig wraps a Viper Unmarshal failure.
	ErrDecodeConfig

	// ErrWatch is returned when a filesystem watch can't be established
	// on the primary config file.
	ErrWatch
)

// Config holds the recognized fields of the server configuration
// table, unchanged from spec.md §6 (server_ip, server_port,
// connection_buffer_size) plus this port's domain-stack additions
// (everything else).
type Config struct {
	ServerIP              string   `mapstructure:"server_ip"`
	ServerPort            int      `mapstructure:"server_port"`
	ConnectionBufferSize  int      `mapstructure:"connection_buffer_size"`
	LogFilePath           string   `mapstructure:"log_file_path"`
	LogFileMode           uint32   `mapstructure:"log_file_mode"`
	SyslogNetwork         string   `mapstructure:"syslog_network"`
	SyslogAddress         string   `mapstructure:"syslog_address"`
	DNSNameservers        []string `mapstructure:"dns_nameservers"`
	MetricsListen         string   `mapstructure:"metrics_listen"`
	IOTimeout             string   `mapstructure:"io_timeout"`
}

// Addr returns ServerIP:ServerPort, ready for net.Listen.
func (c *Config) Addr() string {
	return c.ServerIP + ":" + strconv.Itoa(c.ServerPort)
}

// IOTimeoutDuration parses IOTimeout with the same human-readable
// duration grammar ("30s", "2m", "1h30m") the rest of this port's
// teacher lineage uses for every other elapsed-time field. An empty or
// unparsable value falls back to 30 seconds rather than failing config
// load over one optional knob.
func (c *Config) IOTimeoutDuration() time.Duration {
	if c.IOTimeout == "" {
		return 30 * time.Second
	}
	d, err := duration.Parse(c.IOTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d.Time()
}

func defaults() Config {
	return Config{
		ServerIP:             "0.0.0.0",
		ServerPort:           80,
		ConnectionBufferSize: 2048,
		LogFileMode:          0644,
		IOTimeout:            "30s",
	}
}
