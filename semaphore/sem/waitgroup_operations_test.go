/*
 * MIT License
 *
 * Copyright (c) 2019 Nicolas JUHEL
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

package sem_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	libsem "github.com/nabbar/luaw-server/semaphore/sem"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WaitGroup Semaphore Operations", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(globalCtx, 5*time.Second)
	})

	AfterEach(func() {
		if cancel != nil {
			cancel()
		}
	})

	Describe("NewWorker/DeferWorker", func() {
		It("should always succeed (no limit)", func() {
			s := libsem.New(ctx, -1)
			defer s.DeferMain()

			for i := 0; i < 100; i++ {
				Expect(s.NewWorker()).ToNot(HaveOccurred())
			}

			for i := 0; i < 100; i++ {
				s.DeferWorker()
			}
		})
	})

	Describe("NewWorkerTry", func() {
		It("should always return true (no limit)", func() {
			s := libsem.New(ctx, -1)
			defer s.DeferMain()

			for i := 0; i < 100; i++ {
				Expect(s.NewWorkerTry()).To(BeTrue())
			}

			for i := 0; i < 100; i++ {
				s.DeferWorker()
			}
		})
	})

	Describe("WaitAll", func() {
		It("should wait for all workers", func() {
			s := libsem.New(ctx, -1)
			defer s.DeferMain()

			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					Expect(s.NewWorker()).ToNot(HaveOccurred())
					defer s.DeferWorker()
					time.Sleep(20 * time.Millisecond)
				}()
			}

			wg.Wait()
			Expect(s.WaitAll()).ToNot(HaveOccurred())
		})

		It("should succeed immediately if no workers", func() {
			s := libsem.New(ctx, -1)
			defer s.DeferMain()

			Expect(s.WaitAll()).ToNot(HaveOccurred())
		})
	})

	Describe("Weighted", func() {
		It("should return -1 for unlimited", func() {
			s := libsem.New(ctx, -1)
			Expect(s.Weighted()).To(Equal(int64(-1)))
		})

		It("should return -1 for any negative value", func() {
			s := libsem.New(ctx, -100)
			Expect(s.Weighted()).To(Equal(int64(-1)))
		})
	})

	Describe("Concurrent operations", func() {
		It("should handle unlimited concurrent workers", func() {
			s := libsem.New(ctx, -1)
			defer s.DeferMain()

			var (
				wg        sync.WaitGroup
				completed atomic.Int32
			)

			for i := 0; i < 200; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					Expect(s.NewWorker()).ToNot(HaveOccurred())
					defer s.DeferWorker()
					completed.Add(1)
					time.Sleep(2 * time.Millisecond)
				}()
			}

			wg.Wait()
			Expect(completed.Load()).To(Equal(int32(200)))
			Expect(s.WaitAll()).ToNot(HaveOccurred())
		})
	})
})
