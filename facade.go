package psort

import (
	"cmp"

	"github.com/katalvlaran/psort/mergesort"
	"github.com/katalvlaran/psort/radixsort"
	"github.com/katalvlaran/psort/reduce"
)

// Sort sorts all of src into dst; src is used as scratch. len(dst) must
// equal len(src).
func Sort[T cmp.Ordered](src, dst []T, opts ...mergesort.Option) {
	mergesort.Sort(src, dst, opts...)
}

// SortPseudoInplace sorts all of src in place, using aux as scratch.
// len(aux) must equal len(src).
func SortPseudoInplace[T cmp.Ordered](src, aux []T, opts ...mergesort.Option) {
	mergesort.SortPseudoInplace(src, aux, opts...)
}

// SortInplace sorts src in place with no auxiliary buffer the size of
// src. WithStable(true) (the default) guarantees stability.
func SortInplace[T cmp.Ordered](src []T, opts ...mergesort.Option) {
	mergesort.SortInplace(src, opts...)
}

// SortRadixLSD stably sorts src into dst via 4-pass LSD radix sort.
// len(dst) must equal len(src).
func SortRadixLSD(src, dst []uint32) {
	radixsort.SortLSD(src, dst)
}

// MSDInPlace sorts src in place via MSD radix sort. Unstable.
func MSDInPlace(src []uint32) {
	radixsort.MSDInPlace(src)
}

// Sum computes the sum of a[l:r] (half-open range) via parallel
// divide-and-conquer reduction.
func Sum[T reduce.Number](a []T, l, r int, opts ...reduce.Option) T {
	return reduce.Sum(a, l, r, opts...)
}
