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

package semaphore

import (
	libsem "github.com/nabbar/luaw-server/semaphore/sem"
)

type semState struct {
	libsem.Sem
	bar bool
}

func (o *semState) Clone() Semaphore {
	return &semState{
		Sem: o.Sem.New(),
		bar: o.bar,
	}
}

func (o *semState) New() libsem.Sem {
	return o.Clone()
}

func (o *semState) BarNumber(title string, status string, total int64, ignore bool, extra any) Bar {
	return &barState{sem: o.Sem}
}

func (o *semState) GetMPB() interface{} {
	return nil
}

type barState struct {
	sem libsem.Sem
}

func (o *barState) NewWorker() error {
	return o.sem.NewWorker()
}

func (o *barState) NewWorkerTry() bool {
	return o.sem.NewWorkerTry()
}

func (o *barState) DeferWorker() {
	o.sem.DeferWorker()
}
