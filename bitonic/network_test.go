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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSequentialNetwork[T any](c Comparator[T]) *network[T] {
	return &network[T]{cmp: c, threshold: math.MaxInt, fork: sequential{}}
}

// countingForker runs branches sequentially and counts joins.
type countingForker struct {
	joins int
}

func (f *countingForker) join(a, b func()) {
	f.joins++
	a()
	b()
}

func TestCompareAndSwapAscending(t *testing.T) {
	data := []int{3, 1, 2, 4}
	newSequentialNetwork(Natural[int]()).compareAndSwap(data, Ascending)
	assert.Equal(t, []int{2, 1, 3, 4}, data)
}

func TestCompareAndSwapDescending(t *testing.T) {
	data := []int{3, 1, 2, 4}
	newSequentialNetwork(Natural[int]()).compareAndSwap(data, Descending)
	assert.Equal(t, []int{3, 4, 2, 1}, data)
}

func TestCompareAndSwapEqualPairsStay(t *testing.T) {
	type rec struct{ key, id int }
	data := []rec{{1, 0}, {2, 1}, {1, 2}, {2, 3}}
	byKey := By(func(r rec) int { return r.key })

	nw := newSequentialNetwork(byKey)
	nw.compareAndSwap(data, Ascending)
	assert.Equal(t, []rec{{1, 0}, {2, 1}, {1, 2}, {2, 3}}, data)

	nw.compareAndSwap(data, Descending)
	assert.Equal(t, []rec{{1, 0}, {2, 1}, {1, 2}, {2, 3}}, data)
}

func TestMergeBitonic(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		dir  Direction
		want []int
	}{
		{"up-down ascending", []int{1, 4, 6, 8, 7, 5, 3, 2}, Ascending, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"up-down descending", []int{1, 4, 6, 8, 7, 5, 3, 2}, Descending, []int{8, 7, 6, 5, 4, 3, 2, 1}},
		{"down-up ascending", []int{9, 5, 2, 0, 1, 3, 4, 7}, Ascending, []int{0, 1, 2, 3, 4, 5, 7, 9}},
		{"pair", []int{2, 1}, Ascending, []int{1, 2}},
		{"single", []int{5}, Descending, []int{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append([]int(nil), tt.in...)
			newSequentialNetwork(Natural[int]()).merge(data, tt.dir)
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestBuildInternalDirections(t *testing.T) {
	// Before the final merge, the halves of an 8-element build are sorted in
	// opposite directions, so a build of each half alone must agree.
	data := []int{10, 30, 11, 20, 4, 330, 21, 110}
	nw := newSequentialNetwork(Natural[int]())

	lo := append([]int(nil), data[:4]...)
	hi := append([]int(nil), data[4:]...)
	nw.build(lo, Ascending)
	nw.build(hi, Descending)
	assert.Equal(t, []int{10, 11, 20, 30}, lo)
	assert.Equal(t, []int{330, 110, 21, 4}, hi)

	nw.build(data, Ascending)
	assert.Equal(t, []int{4, 10, 11, 20, 21, 30, 110, 330}, data)
}

func TestForkCount(t *testing.T) {
	tests := []struct {
		threshold int
		n         int
		joins     int
	}{
		// 7 build splits plus 17 merge splits.
		{threshold: 1, n: 8, joins: 24},
		{threshold: 2, n: 8, joins: 8},
		{threshold: 4, n: 8, joins: 2},
		{threshold: 5, n: 8, joins: 0},
		{threshold: 1 << 20, n: 1024, joins: 0},
	}
	for _, tt := range tests {
		f := &countingForker{}
		nw := &network[int]{cmp: Natural[int](), threshold: tt.threshold, fork: f}
		data := make([]int, tt.n)
		for i := range data {
			data[i] = tt.n - i
		}
		nw.build(data, Ascending)

		assert.Equal(t, tt.joins, f.joins, "threshold=%d n=%d", tt.threshold, tt.n)
		assert.True(t, IsSorted(data, Ascending), "threshold=%d n=%d", tt.threshold, tt.n)
	}
}
