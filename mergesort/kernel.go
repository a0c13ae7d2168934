package mergesort

import (
	"cmp"

	"github.com/katalvlaran/psort/leaf"
	"github.com/katalvlaran/psort/merge"
)

// sortSerial sorts src[l..=r] under the direction flag srcToDst: when
// false, the sorted result ends up in src[l..=r]; when true, in
// dst[l..=r]. Each recursive call flips the flag for its children, so a
// child's result always lands in the buffer opposite its parent's target,
// and the parent merges the two child buffers into its own target.
func sortSerial[T cmp.Ordered](src, dst []T, l, r int, srcToDst bool) {
	if r < l {
		return
	}
	if r-l+1 <= leaf.Threshold {
		leaf.SortSmall(src[l : r+1])
		if srcToDst {
			copy(dst[l:r+1], src[l:r+1])
		}
		return
	}

	m := midpoint(l, r)
	sortSerial(src, dst, l, m, !srcToDst)
	sortSerial(src, dst, m+1, r, !srcToDst)

	if srcToDst {
		merge.Sequential(dst[l:r+1], src[l:m+1], src[m+1:r+1])
	} else {
		merge.Sequential(src[l:r+1], dst[l:m+1], dst[m+1:r+1])
	}
}
