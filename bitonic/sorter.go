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
	"log/slog"
	"math"
	"runtime"
	"sync"

	"github.com/ajroetker/go-bitonic/bitonic/workerpool"
	"golang.org/x/sync/semaphore"
)

// DefaultThreshold is the half length at and above which the default Sorter
// forks. Below it, goroutine hand-off costs more than the comparisons saved.
const DefaultThreshold = 4096

// Sorter holds the parallel/sequential crossover configuration. It is
// immutable once built and safe for concurrent use by any number of sorts.
type Sorter struct {
	threshold int
	maxProcs  int
	pool      *workerpool.Pool
	logger    *slog.Logger
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithPool forks onto a persistent worker pool instead of spawning
// goroutines. The pool is owned by the caller and must outlive every sort
// that uses it.
func WithPool(pool *workerpool.Pool) Option {
	return func(s *Sorter) {
		s.pool = pool
	}
}

// WithMaxProcs caps the number of goroutines a single sort runs on,
// including the caller's. n <= 0 means GOMAXPROCS at the time of the call.
// Ignored when a pool is configured; the pool size is the cap then.
func WithMaxProcs(n int) Option {
	return func(s *Sorter) {
		s.maxProcs = n
	}
}

// WithLogger sets the logger that receives one debug record per sort.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sorter) {
		s.logger = logger
	}
}

// New returns a Sorter that forks the two halves of a split whenever the
// half length is at least threshold. A threshold below 1 is treated as 1,
// which forks at every split.
func New(threshold int, opts ...Option) *Sorter {
	s := &Sorter{threshold: max(threshold, 1)}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Sequential returns a Sorter that never forks.
func Sequential(opts ...Option) *Sorter {
	return New(math.MaxInt, opts...)
}

var defaultSorter = sync.OnceValue(func() *Sorter {
	return New(DefaultThreshold)
})

// Default returns the process-wide Sorter used by Sort and SortFunc.
func Default() *Sorter {
	return defaultSorter()
}

// Threshold returns the half length at which s starts forking.
func (s *Sorter) Threshold() int {
	return s.threshold
}

// Parallel reports whether sorting n elements forks at least once.
func (s *Sorter) Parallel(n int) bool {
	return n/2 >= s.threshold
}

// forker picks the fork-join back end for one sort of n elements, along with
// its name for logging.
func (s *Sorter) forker(n int) (forker, string) {
	switch {
	case !s.Parallel(n):
		return sequential{}, "sequential"
	case s.pool != nil:
		return pooled{pool: s.pool}, "pool"
	}

	procs := s.maxProcs
	if procs <= 0 {
		procs = runtime.GOMAXPROCS(0)
	}
	// The calling goroutine is one of the procs.
	return goroutines{sem: semaphore.NewWeighted(int64(procs - 1))}, "goroutines"
}
