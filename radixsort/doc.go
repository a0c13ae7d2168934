// Package radixsort implements a stable, 4-pass LSD radix sort over 32-bit
// unsigned integer keys, plus an in-place MSD radix sort used as a leaf by
// the adaptive drivers in the parent psort package.
//
// The LSD sort processes the key one byte at a time, least-significant
// first, ping-ponging between two buffers. Within a pass, rather than
// scatter each element directly to its bin's cursor in the destination (one
// random cache-line write per element), elements are first appended to a
// small per-bin buffer; only when that buffer fills is it flushed as one
// sequential burst. This is the classic write-buffering trick for radix
// sort permutation passes: it turns n random writes into n/B sequential
// bursts of B writes each, trading a small amount of bookkeeping for much
// better cache and store-buffer behavior.
package radixsort
