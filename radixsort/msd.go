package radixsort

import "github.com/katalvlaran/psort/leaf"

// msdSmallCutoff is the bucket size below which MSDInPlace switches to the
// insertion-sort leaf rather than recursing into another digit.
const msdSmallCutoff = 48

// MSDInPlace sorts s in place by most-significant-digit-first radix passes
// over 8-bit digits of the uint32 key, using the American-flag-sort
// technique: each digit is permuted into its final bucket boundaries by
// cycling elements directly through the array, with no auxiliary buffer.
//
// Unstable: equal keys may be reordered relative to each other.
func MSDInPlace(s []uint32) {
	msdPass(s, 24)
}

func msdPass(s []uint32, shift uint) {
	if len(s) <= msdSmallCutoff {
		leaf.SortSmall(s)
		return
	}

	var counts [Radix]int
	for _, v := range s {
		counts[byte(v>>shift)]++
	}

	var starts, ends [Radix]int
	sum := 0
	for i := 0; i < Radix; i++ {
		starts[i] = sum
		sum += counts[i]
		ends[i] = sum
	}

	// cursor[bin] tracks the next unfilled slot within bin's region;
	// starts at the left boundary and approaches ends[bin] as elements
	// land in place.
	cursor := starts

	for bin := 0; bin < Radix; bin++ {
		for cursor[bin] < ends[bin] {
			v := s[cursor[bin]]
			target := byte(v >> shift)
			if int(target) == bin {
				cursor[bin]++
				continue
			}
			// Cycle v into its bucket, displacing whatever was
			// there, until a value destined for bin lands here.
			for int(target) != bin {
				dst := cursor[target]
				s[cursor[bin]], s[dst] = s[dst], v
				v = s[cursor[bin]]
				cursor[target]++
				target = byte(v >> shift)
			}
			cursor[bin]++
		}
	}

	if shift == 0 {
		return
	}
	for bin := 0; bin < Radix; bin++ {
		lo, hi := starts[bin], ends[bin]
		if hi-lo > 1 {
			msdPass(s[lo:hi], shift-8)
		}
	}
}
