package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvoke_RunsBoth(t *testing.T) {
	var a, b int32
	Invoke(
		func() { atomic.StoreInt32(&a, 1) },
		func() { atomic.StoreInt32(&b, 1) },
	)
	require.EqualValues(t, 1, atomic.LoadInt32(&a), "branch a did not run")
	require.EqualValues(t, 1, atomic.LoadInt32(&b), "branch b did not run")
}

func TestInvoke_PropagatesPanicFromB(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic to propagate")
		}
	}()
	Invoke(
		func() {},
		func() { panic("boom") },
	)
}

func TestInvoke_PropagatesPanicFromA(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic to propagate")
		}
	}()
	Invoke(
		func() { panic("boom") },
		func() {},
	)
}

func TestInvoke_NestedRecursion(t *testing.T) {
	const n = 1 << 14
	counts := make([]int32, n)
	var rec func(l, r int)
	rec = func(l, r int) {
		if r-l <= 64 {
			for i := l; i < r; i++ {
				atomic.AddInt32(&counts[i], 1)
			}
			return
		}
		m := l + (r-l)/2
		Invoke(
			func() { rec(l, m) },
			func() { rec(m, r) },
		)
	}
	rec(0, n)
	for i, c := range counts {
		require.EqualValuesf(t, 1, c, "counts[%d] touched %d times, want exactly 1", i, c)
	}
}

func TestAutoscaleThreshold(t *testing.T) {
	cases := []struct {
		n, baseline, cores, want int
	}{
		{n: 1000, baseline: 16384, cores: 8, want: 16384},
		{n: 200000, baseline: 16384, cores: 8, want: 25000},
		{n: 200000, baseline: 16384, cores: 0, want: 16384},
	}
	for _, tc := range cases {
		if got := AutoscaleThreshold(tc.n, tc.baseline, tc.cores); got != tc.want {
			t.Errorf("AutoscaleThreshold(%d,%d,%d) = %d; want %d", tc.n, tc.baseline, tc.cores, got, tc.want)
		}
	}
}

func TestCoreCount_Positive(t *testing.T) {
	if CoreCount() <= 0 {
		t.Fatal("CoreCount must be positive")
	}
}
