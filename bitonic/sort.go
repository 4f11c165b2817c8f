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
	"cmp"
	"context"
	"log/slog"
	"time"
)

// Sort sorts data in place in direction dir using the default Sorter.
// It returns an *InvalidLengthError, leaving data untouched, if len(data) is
// not zero or a power of two.
func Sort[T cmp.Ordered](data []T, dir Direction) error {
	return SortWith(Default(), data, dir)
}

// SortFunc sorts data in place in ascending order as defined by c, using the
// default Sorter. Length rules are the same as for Sort.
func SortFunc[T any](data []T, c Comparator[T]) error {
	return SortFuncWith(Default(), data, c)
}

// SortWith is Sort with an explicit Sorter. A nil Sorter means Default().
func SortWith[T cmp.Ordered](s *Sorter, data []T, dir Direction) error {
	return run(s, data, OrderFor[T](dir))
}

// SortFuncWith is SortFunc with an explicit Sorter. A nil Sorter means
// Default().
func SortFuncWith[T any](s *Sorter, data []T, c Comparator[T]) error {
	return run(s, data, c)
}

func run[T any](s *Sorter, data []T, c Comparator[T]) error {
	if s == nil {
		s = Default()
	}

	n := len(data)
	if err := checkLength(n); err != nil {
		return err
	}
	if n <= 1 {
		return nil
	}

	fork, mode := s.forker(n)
	nw := &network[T]{cmp: c, threshold: s.threshold, fork: fork}

	ctx := context.Background()
	if !s.logger.Enabled(ctx, slog.LevelDebug) {
		nw.build(data, Ascending)
		return nil
	}

	start := time.Now()
	nw.build(data, Ascending)
	s.logger.LogAttrs(ctx, slog.LevelDebug, "bitonic sort",
		slog.Int("n", n),
		slog.Int("threshold", s.threshold),
		slog.String("scheduler", mode),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// IsSorted reports whether data is monotonic in direction dir.
func IsSorted[T cmp.Ordered](data []T, dir Direction) bool {
	return IsSortedFunc(data, OrderFor[T](dir))
}

// IsSortedFunc reports whether data is in ascending order as defined by c.
func IsSortedFunc[T any](data []T, c Comparator[T]) bool {
	for i := 1; i < len(data); i++ {
		if c(data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}
