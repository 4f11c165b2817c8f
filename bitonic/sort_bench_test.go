package bitonic

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ajroetker/go-bitonic/bitonic/workerpool"
)

func generateUint32(n int) []uint32 {
	return randomUint32s(rand.New(rand.NewPCG(1, 1)), n)
}

func generateFloat64(n int) []float64 {
	r := rand.New(rand.NewPCG(2, 2))
	data := make([]float64, n)
	for i := range data {
		data[i] = r.Float64() * 1000
	}
	return data
}

var benchSizes = []int{1 << 10, 1 << 14, 1 << 16, 1 << 20}

func BenchmarkSort_Uint32(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	sorters := []struct {
		name string
		s    *Sorter
	}{
		{"Sequential", Sequential()},
		{"Default", Default()},
		{"Pool", New(DefaultThreshold, WithPool(pool))},
	}
	for _, n := range benchSizes {
		ref := generateUint32(n)
		data := make([]uint32, n)
		for _, sc := range sorters {
			b.Run(fmt.Sprintf("%s/%d", sc.name, n), func(b *testing.B) {
				for b.Loop() {
					copy(data, ref)
					_ = SortWith(sc.s, data, Ascending)
				}
			})
		}
		b.Run(fmt.Sprintf("Stdlib/%d", n), func(b *testing.B) {
			for b.Loop() {
				copy(data, ref)
				slices.Sort(data)
			}
		})
	}
}

func BenchmarkSort_Float64_Descending(b *testing.B) {
	for _, n := range benchSizes {
		ref := generateFloat64(n)
		data := make([]float64, n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for b.Loop() {
				copy(data, ref)
				_ = Sort(data, Descending)
			}
		})
	}
}

func BenchmarkThreshold(b *testing.B) {
	n := 1 << 18
	ref := generateUint32(n)
	data := make([]uint32, n)
	for _, threshold := range []int{64, 512, 4096, 32768} {
		s := New(threshold)
		b.Run(fmt.Sprint(threshold), func(b *testing.B) {
			for b.Loop() {
				copy(data, ref)
				_ = SortWith(s, data, Ascending)
			}
		})
	}
}
