package mergesort

import (
	"github.com/katalvlaran/psort/merge"
	"github.com/katalvlaran/psort/parallel"
	"github.com/katalvlaran/psort/radixsort"
)

// SortRadixHybrid sorts src into dst using the same fork/join recursion
// as Sort, substituting radixsort.SortLSD for the insertion-sort leaf.
// This gives linear-time leaves for 32-bit unsigned integer keys; src is
// used as scratch. Stable, since radixsort.SortLSD and merge.Parallel both
// preserve relative order of equal keys.
func SortRadixHybrid(src, dst []uint32, opts ...Option) {
	if len(src) == 0 {
		return
	}
	o := gatherOptions(opts...)
	threshold := autoscaledThreshold(len(src), o.parallelBase)
	sortRadixHybrid(src, dst, 0, len(src)-1, true, threshold, o.mergeCutoff)
}

func sortRadixHybrid(src, dst []uint32, l, r int, srcToDst bool, threshold, mergeCutoff int) {
	if r < l {
		return
	}
	if r-l+1 <= threshold {
		radixsort.SortLSD(src[l:r+1], dst[l:r+1])
		if !srcToDst {
			copy(src[l:r+1], dst[l:r+1])
		}
		return
	}

	m := midpoint(l, r)
	parallel.Invoke(
		func() { sortRadixHybrid(src, dst, l, m, !srcToDst, threshold, mergeCutoff) },
		func() { sortRadixHybrid(src, dst, m+1, r, !srcToDst, threshold, mergeCutoff) },
	)

	if srcToDst {
		merge.Parallel(dst[l:r+1], src[l:m+1], src[m+1:r+1], merge.WithSequentialCutoff(mergeCutoff))
	} else {
		merge.Parallel(src[l:r+1], dst[l:m+1], dst[m+1:r+1], merge.WithSequentialCutoff(mergeCutoff))
	}
}
