// Package parallel provides the structured fork/join primitive the rest of
// psort is built on, plus the two small utilities that lean on it: leaf
// threshold autoscaling and a parallel slice fill.
//
// There is no free-standing background work here and no cancellation: a
// call to Invoke suspends the calling goroutine until both halves finish,
// exactly the shape the sort and reduction drivers need (fork two
// subproblems, join, combine). Nesting follows the recursion tree; Go's
// own scheduler multiplexes the resulting goroutines onto GOMAXPROCS OS
// threads, so no explicit worker pool or semaphore is required.
package parallel
