package mergesort

import (
	"cmp"

	"github.com/katalvlaran/psort/merge"
	"github.com/katalvlaran/psort/parallel"
)

// Sort sorts all of src into dst; src is used as scratch and left in an
// unspecified permutation of the original values. len(dst) must equal
// len(src).
func Sort[T cmp.Ordered](src, dst []T, opts ...Option) {
	if len(src) == 0 {
		return
	}
	SortRange(src, 0, len(src)-1, dst, opts...)
}

// SortRange sorts the closed range src[l..=r] into dst[l..=r]; that same
// range of src is used as scratch. A reversed or empty range (r < l) is a
// no-op.
func SortRange[T cmp.Ordered](src []T, l, r int, dst []T, opts ...Option) {
	if r < l {
		return
	}
	o := gatherOptions(opts...)
	threshold := autoscaledThreshold(r-l+1, o.parallelBase)
	sortParallel(src, dst, l, r, true, threshold, o.mergeCutoff)
}

// SortPseudoInplace sorts all of src in place, using aux as scratch.
// len(aux) must equal len(src). Identical recursion to Sort, differing
// only in which buffer the initial direction flag targets.
func SortPseudoInplace[T cmp.Ordered](src, aux []T, opts ...Option) {
	if len(src) == 0 {
		return
	}
	o := gatherOptions(opts...)
	threshold := autoscaledThreshold(len(src), o.parallelBase)
	sortParallel(src, aux, 0, len(src)-1, false, threshold, o.mergeCutoff)
}

func autoscaledThreshold(n, baseline int) int {
	return parallel.AutoscaleThreshold(n, baseline, parallel.CoreCount())
}

func sortParallel[T cmp.Ordered](src, dst []T, l, r int, srcToDst bool, threshold, mergeCutoff int) {
	if r < l {
		return
	}
	if r-l+1 <= threshold {
		sortSerial(src, dst, l, r, srcToDst)
		return
	}

	m := midpoint(l, r)
	parallel.Invoke(
		func() { sortParallel(src, dst, l, m, !srcToDst, threshold, mergeCutoff) },
		func() { sortParallel(src, dst, m+1, r, !srcToDst, threshold, mergeCutoff) },
	)

	if srcToDst {
		merge.Parallel(dst[l:r+1], src[l:m+1], src[m+1:r+1], merge.WithSequentialCutoff(mergeCutoff))
	} else {
		merge.Parallel(src[l:r+1], dst[l:m+1], dst[m+1:r+1], merge.WithSequentialCutoff(mergeCutoff))
	}
}
