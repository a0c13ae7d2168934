package merge

import "cmp"

// Sequential performs the classic two-finger merge of sorted a and b
// into dst, which must have length len(a)+len(b). Stable: for equal
// keys, elements of a precede elements of b.
func Sequential[T cmp.Ordered](dst, a, b []T) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
