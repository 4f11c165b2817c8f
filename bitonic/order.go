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

import "cmp"

// Direction is the target ordering of a sort.
type Direction uint8

const (
	// Ascending orders elements from smallest to largest.
	Ascending Direction = iota

	// Descending orders elements from largest to smallest.
	Descending
)

// String returns "ascending" or "descending".
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Comparator is a three-way ordering function. It returns a negative number
// when a orders before b, zero when they are equal and a positive number when
// a orders after b.
//
// A Comparator must describe a total order and must be safe to call from
// several goroutines at once: halves of the same slice are compared
// concurrently.
type Comparator[T any] func(a, b T) int

// Reverse returns a comparator with the operands swapped.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Natural returns the ascending comparator for an ordered type.
// Floating-point NaNs order before every other value.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reversed returns the descending comparator for an ordered type.
func Reversed[T cmp.Ordered]() Comparator[T] {
	return Natural[T]().Reverse()
}

// OrderFor returns the built-in comparator that sorts in direction d.
func OrderFor[T cmp.Ordered](d Direction) Comparator[T] {
	if d == Descending {
		return Reversed[T]()
	}
	return Natural[T]()
}

// By returns a comparator that orders elements by an ordered key.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// outOfOrder reports whether a pair whose comparison returned c must be
// swapped to follow direction d.
func (d Direction) outOfOrder(c int) bool {
	if d == Ascending {
		return c > 0
	}
	return c < 0
}
