// Package merge implements the parallel divide-and-conquer merge that
// backs every sort driver in this module: a scratch-buffer variant for
// the not-in-place drivers, and a truly in-place variant (via block
// rotation) for the in-place drivers.
//
// Both variants share the same divide step: pick the longer of the two
// input runs, take its middle element as a pivot, binary-search the
// other run for the matching split point, and recurse on the two
// resulting sub-problems in parallel. The binary-search rule (lower
// bound when searching the run that follows the pivot's run, upper
// bound when searching the run that precedes it) is what keeps the
// merge stable: a pivot drawn from the earlier run must sort before any
// equal-keyed element of the later run, and vice versa.
package merge
