package psort

import (
	"cmp"
	"unsafe"

	"github.com/katalvlaran/psort/mergesort"
	"github.com/katalvlaran/psort/radixsort"
)

// SortRadixAdaptive sorts src (32-bit unsigned keys) in place, choosing
// between a linear-time not-in-place radix-hybrid merge sort (when
// memory permits allocating a same-size auxiliary buffer) and a truly
// in-place MSD radix sort (when it does not). Unstable in the in-place
// branch; stable in the not-in-place branch — callers needing a
// stability guarantee regardless of memory pressure should use
// SortLinearInplaceAdaptive or SortAdaptive instead.
func SortRadixAdaptive(src []uint32, opts ...AdaptiveOption) {
	if len(src) == 0 {
		return
	}
	o := gatherAdaptiveOptions(opts...)
	if memoryIsScarce(o, 4, len(src)) {
		radixsort.MSDInPlace(src)
		return
	}

	aux := safeUint32Buffer(len(src))
	if aux == nil {
		radixsort.MSDInPlace(src)
		return
	}
	mergesort.SortRadixHybridPseudoInplace(src, aux)
}

// SortLinearInplaceAdaptive sorts src (32-bit unsigned keys) in place,
// preferring the linear-time radix-hybrid path when memory permits and
// falling back to the comparator-based in-place merge sort (honoring
// stable) otherwise. The in-place fallback is always that merge sort,
// whatever stable says; the unstable MSD radix sort is not used here.
func SortLinearInplaceAdaptive(src []uint32, stable bool, opts ...AdaptiveOption) {
	if len(src) == 0 {
		return
	}
	o := gatherAdaptiveOptions(opts...)
	if memoryIsScarce(o, 4, len(src)) {
		mergesort.SortInplace(src, mergesort.WithStable(stable))
		return
	}

	aux := safeUint32Buffer(len(src))
	if aux == nil {
		mergesort.SortInplace(src, mergesort.WithStable(stable))
		return
	}
	mergesort.SortRadixHybridPseudoInplace(src, aux)
}

// SortAdaptive generalizes the same memory-pressure decision to any
// cmp.Ordered element type: a not-in-place scratch merge sort when an
// auxiliary buffer is affordable, a truly in-place merge sort otherwise.
func SortAdaptive[T cmp.Ordered](src []T, opts ...AdaptiveOption) {
	if len(src) == 0 {
		return
	}
	o := gatherAdaptiveOptions(opts...)
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if memoryIsScarce(o, elemSize, len(src)) {
		mergesort.SortInplace(src, mergesort.WithStable(o.stable))
		return
	}

	aux := safeBuffer(src)
	if aux == nil {
		mergesort.SortInplace(src, mergesort.WithStable(o.stable))
		return
	}
	mergesort.SortPseudoInplace(src, aux)
}
