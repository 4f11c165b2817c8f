// Copyright 2025 go-bitonic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitonic

import (
	"sync"

	"github.com/ajroetker/go-bitonic/bitonic/workerpool"
	"golang.org/x/sync/semaphore"
)

// forker runs two independent functions, possibly in parallel, and returns
// once both have completed.
type forker interface {
	join(a, b func())
}

// sequential runs both branches on the calling goroutine.
type sequential struct{}

func (sequential) join(a, b func()) {
	a()
	b()
}

// goroutines forks the second branch onto a new goroutine while the per-call
// budget allows it. TryAcquire never blocks, so a spent budget only means the
// branch runs on the caller.
type goroutines struct {
	sem *semaphore.Weighted
}

func (g goroutines) join(a, b func()) {
	if !g.sem.TryAcquire(1) {
		a()
		b()
		return
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		defer g.sem.Release(1)
		b()
	})
	a()
	wg.Wait()
}

// pooled forks onto a persistent worker pool.
type pooled struct {
	pool *workerpool.Pool
}

func (p pooled) join(a, b func()) {
	p.pool.Join(a, b)
}
