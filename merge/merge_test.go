package merge

import (
	"math/rand"
	"sort"
	"testing"
)

func sortedRandomRun(r *rand.Rand, n, max int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = r.Intn(max)
	}
	sort.Ints(s)
	return s
}

func TestParallel_Random(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 60; trial++ {
		na := r.Intn(500)
		nb := r.Intn(500)
		a := sortedRandomRun(r, na, 50)
		b := sortedRandomRun(r, nb, 50)
		dst := make([]int, na+nb)
		Parallel(dst, a, b, WithSequentialCutoff(16))

		want := append(append([]int(nil), a...), b...)
		sort.Ints(want)
		for i := range dst {
			if dst[i] != want[i] {
				t.Fatalf("trial %d: dst[%d]=%d want %d (a=%v b=%v)", trial, i, dst[i], want[i], a, b)
			}
		}
	}
}

func TestParallel_EmptySide(t *testing.T) {
	a := []int{1, 2, 3}
	var b []int
	dst := make([]int, 3)
	Parallel(dst, a, b)
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("dst = %v", dst)
	}

	dst2 := make([]int, 3)
	Parallel(dst2, b, a)
	if dst2[0] != 1 || dst2[1] != 2 || dst2[2] != 3 {
		t.Fatalf("dst2 = %v", dst2)
	}
}

func TestParallel_Stable(t *testing.T) {
	// Encode key*1000+tag so relative tag order within equal keys can be
	// checked after merge, without needing a dedicated struct type.
	n := 64
	a := make([]int, n)
	b := make([]int, n)
	for i := 0; i < n; i++ {
		a[i] = 5*1000 + i       // tags 0..n-1
		b[i] = 5*1000 + (n + i) // tags n..2n-1
	}
	dst := make([]int, 2*n)
	Parallel(dst, a, b, WithSequentialCutoff(8))
	for i, v := range dst {
		if v%1000 != i {
			t.Fatalf("dst[%d] tag = %d; want %d (not stable)", i, v%1000, i)
		}
	}
}

func TestParallelInPlace_Random(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 60; trial++ {
		na := r.Intn(400)
		nb := r.Intn(400)
		a := sortedRandomRun(r, na, 40)
		b := sortedRandomRun(r, nb, 40)
		data := append(append([]int(nil), a...), b...)
		want := append(append([]int(nil), a...), b...)
		sort.Ints(want)

		ParallelInPlace(data, na, WithSequentialCutoff(16))
		for i := range data {
			if data[i] != want[i] {
				t.Fatalf("trial %d: data[%d]=%d want %d (a=%v b=%v)", trial, i, data[i], want[i], a, b)
			}
		}
	}
}

func TestParallelInPlace_Stable(t *testing.T) {
	n := 64
	data := make([]int, 2*n)
	for i := 0; i < n; i++ {
		data[i] = 5*1000 + i
	}
	for i := 0; i < n; i++ {
		data[n+i] = 5*1000 + (n + i)
	}
	ParallelInPlace(data, n, WithSequentialCutoff(8))
	for i, v := range data {
		if v%1000 != i {
			t.Fatalf("data[%d] tag = %d; want %d (not stable)", i, v%1000, i)
		}
	}
}

func TestParallelInPlace_OneSideEmpty(t *testing.T) {
	data := []int{1, 2, 3, 4}
	ParallelInPlace(data, 4) // la == len(data): lb == 0
	if data[0] != 1 || data[3] != 4 {
		t.Fatalf("data mutated when one side empty: %v", data)
	}
	ParallelInPlace(data, 0) // la == 0
	if data[0] != 1 || data[3] != 4 {
		t.Fatalf("data mutated when one side empty: %v", data)
	}
}

func TestRotateLeft(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	rotateLeft(s, 2)
	want := []int{3, 4, 5, 6, 1, 2}
	for i := range s {
		if s[i] != want[i] {
			t.Fatalf("rotateLeft result = %v; want %v", s, want)
		}
	}
}

func TestLowerUpperBound(t *testing.T) {
	s := []int{1, 3, 3, 3, 5, 7}
	if got := lowerBound(s, 3); got != 1 {
		t.Errorf("lowerBound = %d; want 1", got)
	}
	if got := upperBound(s, 3); got != 4 {
		t.Errorf("upperBound = %d; want 4", got)
	}
	if got := lowerBound(s, 0); got != 0 {
		t.Errorf("lowerBound(0) = %d; want 0", got)
	}
	if got := upperBound(s, 10); got != len(s) {
		t.Errorf("upperBound(10) = %d; want %d", got, len(s))
	}
}
