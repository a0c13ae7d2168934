package parallel

import (
	"runtime"
	"sync"
)

// Invoke runs a and b concurrently and blocks until both have returned.
// It is the one suspension point in the whole library: every recursive
// sort or reduction driver forks exactly here and joins here before
// combining its two halves.
//
// A panic raised by either closure is recovered on its own goroutine,
// captured, and re-raised on the calling goroutine after both closures
// have finished — so a panicking left branch can never leave the right
// branch's goroutine still running unobserved, and the caller sees a
// single, ordinary panic.
func Invoke(a, b func()) {
	var wg sync.WaitGroup
	wg.Add(1)

	var bPanic any
	go func() {
		defer wg.Done()
		defer func() {
			if p := recover(); p != nil {
				bPanic = p
			}
		}()
		b()
	}()

	aPanic := callRecovered(a)
	wg.Wait()

	if aPanic != nil {
		panic(aPanic)
	}
	if bPanic != nil {
		panic(bPanic)
	}
}

func callRecovered(fn func()) (p any) {
	defer func() {
		p = recover()
	}()
	fn()
	return nil
}

// CoreCount reports the number of logical processors Invoke's caller
// should assume are available, for leaf-threshold autoscaling. It wraps
// runtime.GOMAXPROCS(0); a result of zero or less (never observed in
// practice, since GOMAXPROCS always reports at least 1) is treated by
// callers as "unknown" and leaves their baseline threshold unchanged,
// per the memory-probe-style "zero means unknown" convention used
// throughout this library.
func CoreCount() int {
	return runtime.GOMAXPROCS(0)
}

// AutoscaleThreshold raises baseline so that, across n elements split
// across CoreCount cores, each core sees roughly one leaf: if n exceeds
// baseline*cores, the threshold becomes n/cores. An unknown core count
// (<=0) leaves baseline untouched.
func AutoscaleThreshold(n, baseline, cores int) int {
	if cores <= 0 {
		return baseline
	}
	if n > baseline*cores {
		return n / cores
	}
	return baseline
}
