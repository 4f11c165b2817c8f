// Copyright 2025 The go-bitonic Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// fork-join computation. A Pool is created once and shared across many sorts,
// so recursive splits hand work to goroutines that already exist instead of
// spawning new ones.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	s := bitonic.New(4096, bitonic.WithPool(pool))
//	for _, batch := range batches {
//	    if err := bitonic.SortWith(s, batch, bitonic.Ascending); err != nil {
//	        return err
//	    }
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// Close must not race with Join or ParallelFor.
type Pool struct {
	numWorkers int
	workC      chan *task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is a unit of work offered to the pool. Whoever claims it first runs
// it: either a worker or the goroutine that forked it.
type task struct {
	fn      func()
	claimed atomic.Bool
	done    sync.WaitGroup
}

func newTask(fn func()) *task {
	t := &task{fn: fn}
	t.done.Add(1)
	return t
}

func (t *task) claim() bool {
	return t.claimed.CompareAndSwap(false, true)
}

func (t *task) run() {
	defer t.done.Done()
	t.fn()
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Room for every worker to have a couple of pending forks.
		workC: make(chan *task, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		// Tasks reclaimed by their forking goroutine are skipped.
		if t.claim() {
			t.run()
		}
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Pending work still completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Join runs a and b, possibly in parallel, and returns once both have
// completed. a always runs on the calling goroutine; b is offered to the
// pool. If no worker has picked b up by the time a returns, the caller runs
// it itself.
//
// Join never blocks on a full queue and may be called from inside a task
// running on the pool: a caller only ever waits for a task that some worker
// is already executing.
func (p *Pool) Join(a, b func()) {
	if p.closed.Load() {
		a()
		b()
		return
	}

	t := newTask(b)
	select {
	case p.workC <- t:
	default:
		// Queue is full, every worker is busy.
		a()
		b()
		return
	}

	a()

	if t.claim() {
		t.run()
		return
	}
	t.done.Wait()
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
// It must not be called from inside a pool task.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	tasks := make([]*task, 0, workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		t := newTask(func() { fn(start, end) })
		tasks = append(tasks, t)
		p.workC <- t
	}

	for _, t := range tasks {
		t.done.Wait()
	}
}
