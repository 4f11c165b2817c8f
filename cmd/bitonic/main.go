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

// Command bitonic sorts unsigned 32-bit integers with the parallel bitonic
// sorter.
//
// Usage:
//
//	bitonic 10 30 11 20 4 330 21 110
//	echo "4 3 2 1" | bitonic -desc
//	bitonic -random 1048576 -workers 8 -verify -v
//	bitonic -info
//
// The number of values must be a power of two.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-bitonic/bitonic"
	"github.com/ajroetker/go-bitonic/bitonic/workerpool"
	"github.com/ajroetker/go-bitonic/internal/cpuinfo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	desc      bool
	threshold int
	workers   int
	random    int
	seed      uint64
	verify    bool
	info      bool
	verbose   bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bitonic", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.BoolVar(&opts.desc, "desc", false, "Sort in descending order")
	fs.IntVar(&opts.threshold, "threshold", bitonic.DefaultThreshold, "Half length at which splits run in parallel")
	fs.IntVar(&opts.workers, "workers", 0, "Fork onto a persistent pool of this many workers (0: spawn goroutines)")
	fs.IntVar(&opts.random, "random", 0, "Sort this many pseudo-random values instead of reading input")
	fs.Uint64Var(&opts.seed, "seed", 1, "Seed for -random")
	fs.BoolVar(&opts.verify, "verify", false, "Check the result is sorted")
	fs.BoolVar(&opts.info, "info", false, "Print CPU and configuration details and exit")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.info {
		printInfo(stdout, opts)
		return 0
	}

	if err := sortValues(opts, fs.Args(), stdin, stdout, logger); err != nil {
		logger.Error("sort failed", "error", err)
		return 1
	}
	return 0
}

func sortValues(opts options, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var data []uint32
	var err error
	switch {
	case opts.random > 0:
		data = randomValues(opts.random, opts.seed)
	case len(args) > 0:
		data, err = parseValues(strings.NewReader(strings.Join(args, " ")))
	default:
		data, err = parseValues(stdin)
	}
	if err != nil {
		return err
	}

	sorterOpts := []bitonic.Option{bitonic.WithLogger(logger)}
	var pool *workerpool.Pool
	if opts.workers > 0 {
		pool = workerpool.New(opts.workers)
		defer pool.Close()
		sorterOpts = append(sorterOpts, bitonic.WithPool(pool))
	}
	s := bitonic.New(opts.threshold, sorterOpts...)

	dir := bitonic.Ascending
	if opts.desc {
		dir = bitonic.Descending
	}

	start := time.Now()
	if err := bitonic.SortWith(s, data, dir); err != nil {
		return fmt.Errorf("sorting %d values: %w", len(data), err)
	}
	elapsed := time.Since(start)

	if opts.verify && !verifySorted(pool, data, dir) {
		return fmt.Errorf("result is not %s", dir)
	}

	if opts.random > 0 {
		fmt.Fprintf(stdout, "sorted %d values (%s) in %v\n", len(data), dir, elapsed)
		return nil
	}

	w := bufio.NewWriter(stdout)
	for i, v := range data {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	w.WriteByte('\n')
	return w.Flush()
}

func parseValues(r io.Reader) ([]uint32, error) {
	var data []uint32
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseUint(sc.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing value %d: %w", len(data)+1, err)
		}
		data = append(data, uint32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func randomValues(n int, seed uint64) []uint32 {
	r := rand.New(rand.NewPCG(seed, seed))
	data := make([]uint32, n)
	for i := range data {
		data[i] = r.Uint32()
	}
	return data
}

// verifySorted checks monotonicity, splitting the scan across pool workers
// when a pool is available.
func verifySorted(pool *workerpool.Pool, data []uint32, dir bitonic.Direction) bool {
	if pool == nil {
		return bitonic.IsSorted(data, dir)
	}

	var unsorted atomic.Bool
	pool.ParallelFor(len(data), func(start, end int) {
		// Include the pair that straddles the chunk boundary.
		if start > 0 {
			start--
		}
		if !bitonic.IsSorted(data[start:end], dir) {
			unsorted.Store(true)
		}
	})
	return !unsorted.Load()
}

func printInfo(w io.Writer, opts options) {
	info := cpuinfo.Detect()
	s := bitonic.New(opts.threshold)

	fmt.Fprintf(w, "arch:       %s\n", info.Arch)
	fmt.Fprintf(w, "simd:       %s (%d bytes)\n", info.Level, info.Level.Width())
	fmt.Fprintf(w, "cpus:       %d\n", info.NumCPU)
	fmt.Fprintf(w, "gomaxprocs: %d\n", info.GOMAXPROCS)
	fmt.Fprintf(w, "threshold:  %d\n", s.Threshold())
	fmt.Fprintf(w, "workers:    %d\n", opts.workers)
}
