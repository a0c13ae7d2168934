package mergesort

// SortRadixHybridPseudoInplace sorts all of src in place using aux as
// scratch, with radixsort.SortLSD as the leaf operation. Identical
// recursion to SortRadixHybrid, differing only in which buffer the
// initial direction flag targets — the adaptive top driver uses this
// form so the linear-time radix path leaves its result in the caller's
// own slice without a final explicit copy.
func SortRadixHybridPseudoInplace(src, aux []uint32, opts ...Option) {
	if len(src) == 0 {
		return
	}
	o := gatherOptions(opts...)
	threshold := autoscaledThreshold(len(src), o.parallelBase)
	sortRadixHybrid(src, aux, 0, len(src)-1, false, threshold, o.mergeCutoff)
}
