package merge

import (
	"cmp"

	"github.com/katalvlaran/psort/parallel"
)

// ParallelInPlace merges the two sorted, adjacent runs data[:la] and
// data[la:] into a single sorted run occupying all of data, without any
// auxiliary buffer the size of data. Below the sequential cutoff it
// merges with a bounded-size temporary (never larger than the smaller
// of the two runs); above it, it picks the longer run as the pivot
// side, rotates the two selected sub-halves adjacent to each other, and
// recurses on the two halves in parallel.
//
// Stable: for equal keys, elements of data[:la] precede elements of
// data[la:].
func ParallelInPlace[T cmp.Ordered](data []T, la int, opts ...Option) {
	o := gatherOptions(opts...)
	parallelMergeInPlace(data, la, o.cutoff)
}

func parallelMergeInPlace[T cmp.Ordered](data []T, la int, cutoff int) {
	lb := len(data) - la
	if la == 0 || lb == 0 {
		return
	}
	if la+lb <= cutoff {
		sequentialInPlaceMerge(data, la)
		return
	}

	a := data[:la]
	b := data[la:]

	var cutA, cutB int
	if la >= lb {
		mid := la / 2
		pivot := a[mid]
		cutB = lowerBound(b, pivot)
		cutA = mid + 1
	} else {
		mid := lb / 2
		pivot := b[mid]
		cutA = upperBound(a, pivot)
		cutB = mid + 1
	}

	// Layout is currently [leftA | rightA | leftB | rightB]; rotate the
	// middle two blocks (rightA, leftB) so leftA and leftB become
	// adjacent, matching the recursive divide used by Parallel.
	middle := data[cutA : la+cutB]
	rotateLeft(middle, la-cutA)

	leftLen := cutA + cutB
	left := data[:leftLen]
	right := data[leftLen:]

	parallel.Invoke(
		func() { parallelMergeInPlace(left, cutA, cutoff) },
		func() { parallelMergeInPlace(right, la-cutA, cutoff) },
	)
}

// sequentialInPlaceMerge merges the adjacent sorted runs data[:la] and
// data[la:] using a temporary buffer sized to the smaller run only,
// never a full copy of data. The merge direction (forward from the
// buffered run's copy, or backward toward it) is chosen so the buffered
// source is always read before the in-place destination overwrites it.
func sequentialInPlaceMerge[T cmp.Ordered](data []T, la int) {
	a := data[:la]
	b := data[la:]
	lb := len(b)

	if la <= lb {
		buf := append(make([]T, 0, la), a...)
		i, j, k := 0, 0, 0
		for i < len(buf) && j < lb {
			if buf[i] <= b[j] {
				data[k] = buf[i]
				i++
			} else {
				data[k] = b[j]
				j++
			}
			k++
		}
		k += copy(data[k:], buf[i:])
		copy(data[k:], b[j:])
		return
	}

	buf := append(make([]T, 0, lb), b...)
	i, j, k := la-1, lb-1, len(data)-1
	for i >= 0 && j >= 0 {
		if a[i] > buf[j] {
			data[k] = a[i]
			i--
		} else {
			data[k] = buf[j]
			j--
		}
		k--
	}
	if j >= 0 {
		copy(data[:j+1], buf[:j+1])
	}
}
