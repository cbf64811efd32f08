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

package server_test

import (
	"context"
	"net"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libptc "github.com/nabbar/luaw-server/network/protocol"
	sckcfg "github.com/nabbar/luaw-server/socket/config"
	scksrv "github.com/nabbar/luaw-server/socket/server"
)

var _ = Describe("Server Listen/Echo", func() {
	It("should echo bytes back to a connected TCP client", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())
		addr := ln.Addr().String()
		Expect(ln.Close()).ToNot(HaveOccurred())

		cfg := sckcfg.Server{Network: libptc.NetworkTCP, Address: addr}
		srv, err := scksrv.New(nil, echoHandler(), cfg)
		Expect(err).ToNot(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			defer GinkgoRecover()
			if err := srv.Listen(ctx); err != nil && !strings.Contains(err.Error(), "closed") {
				Fail("unexpected Listen error: " + err.Error())
			}
		}()

		Eventually(func() error {
			c, e := net.DialTimeout("tcp", addr, 100*time.Millisecond)
			if e == nil {
				_ = c.Close()
			}
			return e
		}, 2*time.Second, 20*time.Millisecond).Should(Succeed())

		conn, err := net.Dial("tcp", addr)
		Expect(err).ToNot(HaveOccurred())
		defer conn.Close()

		_, err = conn.Write([]byte("ping"))
		Expect(err).ToNot(HaveOccurred())

		buf := make([]byte, 4)
		_, err = conn.Read(buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(buf)).To(Equal("ping"))

		Expect(srv.Close()).ToNot(HaveOccurred())
	})
})
