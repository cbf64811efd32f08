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

// Package app wires every top-level component this module ships -
// configuration, logging sinks, the DNS resolver, the scheduler bridge,
// the reactor, the listener set and the optional metrics endpoint - into
// one runnable Server, the way cmd/luaw-server's main.go needs it built
// but without depending on cobra itself, so the wiring can be exercised
// directly from tests.
package app

import (
	"time"

	liberr "github.com/nabbar/luaw-server/errors"
)

const (
	// ErrConfigLoad wraps a config.Load failure.
	ErrConfigLoad liberr.CodeError = iota + 1

	// ErrLoggerOptions wraps a failure applying the logger's file/syslog
	// sinks built from the loaded configuration.
	ErrLoggerOptions

	// ErrListenerBind wraps a failure registering the server's listener
	// address.
	ErrListenerBind
)

// tickInterval is the reactor's fallback drain period: a low enough
// frequency that a resumed thread with no direct Tick caller nearby
// (sched's own doc comment example) is still delivered promptly.
const tickInterval = 50 * time.Millisecond
