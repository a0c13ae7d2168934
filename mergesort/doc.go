// Package mergesort implements the recursive merge-sort drivers: a serial
// kernel, a fork/join parallel driver with two entry points differing only
// in initial ping-pong direction, a truly in-place driver, and a
// radix-hybrid driver for 32-bit unsigned integer keys.
//
// All drivers share the same recursion shape: split the active range at
// an overflow-safe midpoint, recurse on both halves, and combine with the
// package merge. Below a per-build leaf threshold they fall back to
// insertion sort (or, for the radix-hybrid driver, LSD radix permute)
// rather than recursing further.
package mergesort
