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

package sem

import (
	"context"

	"golang.org/x/sync/semaphore"
)

type weightedSem struct {
	ctxPassthrough

	cnl    context.CancelFunc
	weight int64
	w      *semaphore.Weighted
}

func newWeighted(ctx context.Context, cnl context.CancelFunc, weight int64) *weightedSem {
	return &weightedSem{
		ctxPassthrough: ctxPassthrough{ctx: ctx},
		cnl:            cnl,
		weight:         weight,
		w:              semaphore.NewWeighted(weight),
	}
}

func (o *weightedSem) Weighted() int64 {
	return o.weight
}

func (o *weightedSem) NewWorker() error {
	return o.w.Acquire(o.ctx, 1)
}

func (o *weightedSem) NewWorkerTry() bool {
	return o.w.TryAcquire(1)
}

func (o *weightedSem) DeferWorker() {
	o.w.Release(1)
}

func (o *weightedSem) WaitAll() error {
	if err := o.w.Acquire(o.ctx, o.weight); err != nil {
		return err
	}

	o.w.Release(o.weight)
	return nil
}

func (o *weightedSem) DeferMain() {
	o.cnl()
}

func (o *weightedSem) New() Sem {
	return New(o.ctx, o.weight)
}
