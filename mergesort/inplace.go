package mergesort

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/psort/leaf"
	"github.com/katalvlaran/psort/merge"
	"github.com/katalvlaran/psort/parallel"
)

// SortInplace sorts src in place using no auxiliary buffer the size of
// src. WithStable(true) (the default) guarantees stability by always
// using the insertion-sort leaf; WithStable(false) permits an unstable
// leaf sort, which is marginally cheaper for leaves containing few or no
// duplicate keys.
func SortInplace[T cmp.Ordered](src []T, opts ...Option) {
	if len(src) == 0 {
		return
	}
	o := gatherOptions(opts...)
	threshold := autoscaledThreshold(len(src), o.parallelBase)
	sortInplace(src, 0, len(src)-1, threshold, o.mergeCutoff, o.stable)
}

func sortInplace[T cmp.Ordered](src []T, l, r, threshold, mergeCutoff int, stable bool) {
	if r < l {
		return
	}
	if r-l+1 <= leaf.Threshold {
		if stable {
			leaf.SortSmall(src[l : r+1])
		} else {
			slices.Sort(src[l : r+1])
		}
		return
	}

	m := midpoint(l, r)
	if r-l+1 <= threshold {
		sortInplace(src, l, m, threshold, mergeCutoff, stable)
		sortInplace(src, m+1, r, threshold, mergeCutoff, stable)
	} else {
		parallel.Invoke(
			func() { sortInplace(src, l, m, threshold, mergeCutoff, stable) },
			func() { sortInplace(src, m+1, r, threshold, mergeCutoff, stable) },
		)
	}

	merge.ParallelInPlace(src[l:r+1], m-l+1, merge.WithSequentialCutoff(mergeCutoff))
}
