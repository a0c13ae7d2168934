package leaf

import "cmp"

// Threshold is the subproblem size at or below which the recursive
// drivers in mergesort stop recursing and sort in place with SortSmall
// instead. Matches the C++ original's insertion-sort cutoff
// of 48 elements, found across every hybrid driver variant in
// ParallelMergeSort.h.
const Threshold = 48

// SortSmall sorts s in place using binary insertion sort: stable,
// in-place, and fast for the small spans the recursive drivers bottom
// out to. It is never called above Threshold elements by this module's
// own drivers, but takes no slice-length shortcut itself so it stays
// correct if a caller uses it directly on a larger span.
func SortSmall[T cmp.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := insertionIndex(s[:i], key)
		copy(s[j+1:i+1], s[j:i])
		s[j] = key
	}
}

// SortSmallFunc is SortSmall for types without a natural cmp.Ordered
// instance, driven by a caller-supplied less function. Stable: an element
// moves left only past elements that are strictly greater under less.
// No driver in this module calls it; it is exported for callers.
func SortSmallFunc[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i
		for j > 0 && less(key, s[j-1]) {
			s[j] = s[j-1]
			j--
		}
		s[j] = key
	}
}

// insertionIndex returns the index of the first element in the
// already-sorted s that is strictly greater than key (binary search),
// so the insertion above places key after any equal element already
// present and stability is preserved.
func insertionIndex[T cmp.Ordered](s []T, key T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if s[mid] <= key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
