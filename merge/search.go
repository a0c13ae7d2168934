package merge

import "cmp"

// lowerBound returns the index of the first element in sorted s that is
// not less than key, i.e. the insertion point that places key before
// any equal element.
func lowerBound[T cmp.Ordered](s []T, key T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if s[mid] < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the index of the first element in sorted s that is
// strictly greater than key, i.e. the insertion point that places key
// after any equal element.
func upperBound[T cmp.Ordered](s []T, key T) int {
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
