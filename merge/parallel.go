package merge

import (
	"cmp"

	"github.com/katalvlaran/psort/parallel"
)

// Parallel merges sorted a and b into dst (len(dst) must equal
// len(a)+len(b)) using divide-and-conquer: below the sequential cutoff
// it falls back to Sequential; above it, it picks the longer run as the
// pivot side, binary-searches the other run for the matching split
// point, and recurses on the two halves via parallel.Invoke.
//
// Stable: for equal keys, elements of a precede elements of b,
// regardless of which run supplied the pivot.
func Parallel[T cmp.Ordered](dst, a, b []T, opts ...Option) {
	o := gatherOptions(opts...)
	parallelMerge(dst, a, b, o.cutoff)
}

func parallelMerge[T cmp.Ordered](dst, a, b []T, cutoff int) {
	if len(a) == 0 {
		copy(dst, b)
		return
	}
	if len(b) == 0 {
		copy(dst, a)
		return
	}
	if len(a)+len(b) <= cutoff {
		Sequential(dst, a, b)
		return
	}

	var leftLen int
	var leftA, rightA, leftB, rightB []T

	if len(a) >= len(b) {
		mid := len(a) / 2
		pivot := a[mid]
		splitB := lowerBound(b, pivot)
		leftA, rightA = a[:mid+1], a[mid+1:]
		leftB, rightB = b[:splitB], b[splitB:]
		leftLen = len(leftA) + len(leftB)
	} else {
		mid := len(b) / 2
		pivot := b[mid]
		splitA := upperBound(a, pivot)
		leftB, rightB = b[:mid+1], b[mid+1:]
		leftA, rightA = a[:splitA], a[splitA:]
		leftLen = len(leftA) + len(leftB)
	}

	parallel.Invoke(
		func() { parallelMerge(dst[:leftLen], leftA, leftB, cutoff) },
		func() { parallelMerge(dst[leftLen:], rightA, rightB, cutoff) },
	)
}
