// Package reduce implements a parallel divide-and-conquer sum, a worked
// instance of the same fork/join skeleton the merge-sort drivers use,
// included as an illustrative second consumer of package parallel.
package reduce
