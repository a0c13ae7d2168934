package mergesort

// midpoint computes the split point of the closed range [l, r] without
// risking the overflow that (l+r)/2 would have for large indices. It is
// equivalent to the split-and-recombine form l/2 + r/2 + (l%2+r%2)/2 used
// by some merge-sort references, but simpler to read.
func midpoint(l, r int) int {
	return l + (r-l)/2
}
