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
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	liberr "github.com/nabbar/luaw-server/errors"
)

// Load reads paths[0] as the primary config file and merges every
// remaining path on top of it, in order - the CLI's "additional
// script" arguments (spec.md §6) become additional config files
// merged the same way. Fields absent from every file fall back to
// defaults().
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		return nil, liberr.New(uint16(ErrNoConfigFile), "config: at least one config file is required")
	}

	v := viper.New()
	d := defaults()
	v.SetDefault("server_ip", d.ServerIP)
	v.SetDefault("server_port", d.ServerPort)
	v.SetDefault("connection_buffer_size", d.ConnectionBufferSize)
	v.SetDefault("log_file_mode", d.LogFileMode)
	v.SetDefault("io_timeout", d.IOTimeout)

	v.SetConfigFile(paths[0])
	if err := v.ReadInConfig(); err != nil {
		return nil, liberr.New(uint16(ErrReadConfigFile), "config: reading "+paths[0], err)
	}

	for _, p := range paths[1:] {
		v.SetConfigFile(p)
		if err := v.MergeInConfig(); err != nil {
			return nil, liberr.New(uint16(ErrReadConfigFile), "config: merging "+p, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, liberr.New(uint16(ErrDecodeConfig), "config: decoding merged config", err)
	}

	return cfg, nil
}

// Watcher re-runs Load against the same file set whenever the primary
// config file changes on disk, and hands the freshly decoded Config to
// onChange. It wraps Viper's own fsnotify-backed WatchConfig rather
// than opening a second watch on the same path.
type Watcher struct {
	mu       sync.Mutex
	v        *viper.Viper
	paths    []string
	onChange func(*Config)
}

// Watch establishes the filesystem watch and returns the Watcher; call
// Close to stop watching. onChange is invoked once per detected
// change, never concurrently with itself.
func Watch(onChange func(*Config), paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, liberr.New(uint16(ErrNoConfigFile), "config: at least one config file is required")
	}

	v := viper.New()
	v.SetConfigFile(paths[0])
	if err := v.ReadInConfig(); err != nil {
		return nil, liberr.New(uint16(ErrReadConfigFile), "config: reading "+paths[0], err)
	}

	w := &Watcher{v: v, paths: paths, onChange: onChange}

	v.OnConfigChange(func(_ fsnotify.Event) {
		w.mu.Lock()
		defer w.mu.Unlock()

		cfg, err := Load(w.paths...)
		if err != nil {
			return
		}
		if w.onChange != nil {
			w.onChange(cfg)
		}
	})
	v.WatchConfig()

	return w, nil
}

// Close stops the underlying filesystem watch. Viper exposes no
// explicit unwatch call; the watch goroutine it owns exits when the
// process does, so Close here only drops this Watcher's own callback.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.onChange = nil
}
