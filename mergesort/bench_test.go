package mergesort_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/psort/mergesort"
)

func buildRandomInts(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	a := make([]int, n)
	for i := range a {
		a[i] = r.Intn(1 << 30)
	}
	return a
}

func BenchmarkSort(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 16, 1 << 20} {
		base := buildRandomInts(n, 7)
		src := make([]int, n)
		dst := make([]int, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				copy(src, base)
				mergesort.Sort(src, dst)
			}
		})
	}
}

func BenchmarkSortInplace(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 16, 1 << 20} {
		base := buildRandomInts(n, 8)
		buf := make([]int, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				copy(buf, base)
				mergesort.SortInplace(buf)
			}
		})
	}
}
