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

// network holds what every recursive step of one sort needs. It is created
// per call and discarded when the sort returns.
type network[T any] struct {
	cmp       Comparator[T]
	threshold int
	fork      forker
}

// build turns data into a sequence sorted in direction dir. The first half is
// sorted ascending and the second half descending, which makes the whole
// range bitonic whatever dir is; only the final merge applies dir.
func (nw *network[T]) build(data []T, dir Direction) {
	n := len(data)
	if n <= 1 {
		return
	}

	mid := n / 2
	lo, hi := data[:mid], data[mid:]
	if mid >= nw.threshold {
		nw.fork.join(
			func() { nw.build(lo, Ascending) },
			func() { nw.build(hi, Descending) },
		)
	} else {
		nw.build(lo, Ascending)
		nw.build(hi, Descending)
	}

	nw.merge(data, dir)
}

// merge sorts a bitonic sequence in direction dir.
func (nw *network[T]) merge(data []T, dir Direction) {
	n := len(data)
	if n <= 1 {
		return
	}

	nw.compareAndSwap(data, dir)

	mid := n / 2
	lo, hi := data[:mid], data[mid:]
	if mid >= nw.threshold {
		nw.fork.join(
			func() { nw.merge(lo, dir) },
			func() { nw.merge(hi, dir) },
		)
		return
	}
	nw.merge(lo, dir)
	nw.merge(hi, dir)
}

// compareAndSwap orders every pair (data[i], data[i+n/2]) in direction dir.
// This is the only place elements move.
func (nw *network[T]) compareAndSwap(data []T, dir Direction) {
	mid := len(data) / 2
	lo, hi := data[:mid], data[mid:]
	hi = hi[:len(lo)]
	for i := range lo {
		if dir.outOfOrder(nw.cmp(lo[i], hi[i])) {
			lo[i], hi[i] = hi[i], lo[i]
		}
	}
}
