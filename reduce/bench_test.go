package reduce_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/psort/parallel"
	"github.com/katalvlaran/psort/reduce"
)

// buildConstantInts builds an n-element benchmark input by broadcasting
// one seeded value across the slice with parallel.Fill, so setup cost
// stays dominated by allocation rather than a serial for loop over n
// elements.
func buildConstantInts(n int, seed int64) []int64 {
	r := rand.New(rand.NewSource(seed))
	a := make([]int64, n)
	parallel.Fill(a, r.Int63n(1000))
	return a
}

func BenchmarkSum(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 16, 1 << 20, 1 << 24} {
		a := buildConstantInts(n, 42)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = reduce.Sum(a, 0, len(a))
			}
		})
	}
}
