// Package psort (katalvlaran/psort) is your parallel sorting toolkit for
// in-memory Go slices.
//
// 🚀 What is psort?
//
//	A generic, fork/join parallel sorting library built around a hybrid
//	merge sort, plus a linear-time radix path and a memory-aware driver
//	that picks between them:
//
//	  • Merge-sort drivers: scratch-buffer, pseudo-in-place, and truly
//	    in-place, all sharing one fork/join recursion skeleton
//	  • LSD/MSD radix sort: linear-time passes over 32-bit unsigned keys
//	  • Adaptive top driver: probes resident memory before committing to
//	    an auxiliary buffer, degrading gracefully under pressure
//	  • Parallel reduction: a worked second example of the same
//	    fork/join primitive
//
// ✨ Why choose psort?
//
//   - Generic — works over any cmp.Ordered element type
//   - Honest about memory — never silently allocates more than it warns
//     you it might, and never panics when an allocation is refused
//   - Structured concurrency — no goroutine leaks, no cancellation
//     tokens, no futures: every Invoke call is a join point
//
// Under the hood:
//
//	parallel/    — fork/join primitive, leaf-threshold autoscaling, Fill
//	leaf/        — sequential insertion-sort leaf
//	merge/       — parallel divide-and-conquer merge, scratch & in-place
//	radixsort/   — stable LSD radix sort, in-place MSD radix sort
//	mergesort/   — the merge-sort drivers (serial, parallel, in-place, radix-hybrid)
//	memprobe/    — injectable physical-memory probe
//	reduce/      — parallel divide-and-conquer sum
//
//	go get github.com/katalvlaran/psort
package psort
