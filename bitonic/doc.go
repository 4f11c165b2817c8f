// Package bitonic provides a parallel, in-place bitonic sort.
//
// A bitonic sorting network performs the same sequence of comparisons for
// every input of a given length. That makes it embarrassingly parallel: each
// recursive step splits the slice at its midpoint into two halves that never
// alias, and the halves can be processed concurrently without locks.
//
// # Algorithm
//
// Sorting a range builds a bitonic sequence by sorting its first half
// ascending and its second half descending, then merges the whole range in
// the requested direction. Merging compares element i with element i+n/2 for
// every i in the first half, swapping pairs that are out of order, and then
// merges each half on its own. Both steps recurse down to single elements.
//
// # Length
//
// The network only works on lengths that are a power of two. Any other length
// is rejected with an *InvalidLengthError before the slice is touched. Empty
// and single-element slices are already sorted.
//
// # Parallelism
//
// A Sorter decides at every split whether the two halves run concurrently. If
// the half length is at least the Sorter's threshold both halves are forked
// and joined; otherwise they run one after the other on the current
// goroutine. Forks go to fresh goroutines, capped per call at GOMAXPROCS, or
// to a persistent workerpool.Pool when one is configured.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-bitonic/bitonic"
//
//	func Process(data []uint32) error {
//	    return bitonic.Sort(data, bitonic.Ascending)
//	}
//
//	func ByAge(people []Person) error {
//	    return bitonic.SortFunc(people, bitonic.By(func(p Person) int { return p.Age }))
//	}
//
// The sort is not stable.
package bitonic
