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
 */

package runner

import (
	"fmt"
	"os"
	"strings"
)

// RecoveryCaller reports a recovered panic value r to stderr, tagged with the
// caller-supplied name and optional context strings. It is a no-op when r is
// nil, so it is safe to call unconditionally from a deferred recover():
//
//	defer func() {
//	    runner.RecoveryCaller("pkg/worker/run", recover())
//	}()
func RecoveryCaller(name string, r any, info ...string) {
	if r == nil {
		return
	}

	msg := fmt.Sprintf("recovering panic on %s", name)

	if len(info) > 0 {
		msg += ": " + strings.Join(info, ", ")
	}

	_, _ = fmt.Fprintf(os.Stderr, "%s\n%v\n", msg, r)
}
