package radixsort

import "github.com/katalvlaran/psort/leaf"

const (
	// Radix is the number of bins per digit, fixed at one byte.
	Radix = 256
	// Digits is the number of passes needed to cover a 32-bit key at
	// one byte per pass.
	Digits = 4
	// BufferDepth is the number of keys buffered per bin before a
	// flush, fixed by the de-randomization scheme.
	BufferDepth = 128
	// smallInputFallback is the length below which SortLSD defers to
	// the insertion-sort leaf rather than paying for four full passes.
	smallInputFallback = 100
)

// SortLSD stably sorts src into dst by 4 least-significant-digit-first
// passes over 8-bit digits of the uint32 key. len(dst) must equal
// len(src). For n < 100 it instead insertion-sorts a copy of src into dst.
//
// Not in place: src is left in an unspecified (but still a permutation of
// the original) state if n >= 100, since passes ping-pong between src and
// dst as scratch.
func SortLSD(src, dst []uint32) {
	n := len(src)
	if n == 0 {
		return
	}
	if n != len(dst) {
		panic("radixsort: SortLSD: len(src) != len(dst)")
	}
	if n < smallInputFallback {
		copy(dst, src)
		leaf.SortSmall(dst)
		return
	}

	var counts [Digits][Radix]uint32
	for _, v := range src {
		counts[0][byte(v)]++
		counts[1][byte(v>>8)]++
		counts[2][byte(v>>16)]++
		counts[3][byte(v>>24)]++
	}

	in, out := src, dst
	for d := 0; d < Digits; d++ {
		var endOfBin [Radix]uint32
		var sum uint32
		for i := 0; i < Radix; i++ {
			endOfBin[i] = sum
			sum += counts[d][i]
		}

		permuteDigit(in, out, uint(d*8), &endOfBin)
		in, out = out, in
	}

	// After Digits (even) passes, the sorted data is back in src's
	// buffer; copy it into dst to honor the not-in-place contract.
	if &in[0] != &dst[0] {
		copy(dst, in)
	}
}

// permuteDigit streams in through the per-bin de-randomization buffers,
// writing the stably-permuted result to out, using endOfBin as the
// starting cursor for each bin (mutated in place as bins fill).
func permuteDigit(in, out []uint32, shift uint, endOfBin *[Radix]uint32) {
	var binBuf [Radix][BufferDepth]uint32
	var occupancy [Radix]uint8

	for _, v := range in {
		bin := byte(v >> shift)
		occ := occupancy[bin]
		binBuf[bin][occ] = v
		occ++
		if int(occ) == BufferDepth {
			copy(out[endOfBin[bin]:], binBuf[bin][:])
			endOfBin[bin] += BufferDepth
			occupancy[bin] = 0
		} else {
			occupancy[bin] = occ
		}
	}

	for bin := 0; bin < Radix; bin++ {
		occ := occupancy[bin]
		if occ == 0 {
			continue
		}
		copy(out[endOfBin[bin]:], binBuf[bin][:occ])
		endOfBin[bin] += uint32(occ)
	}
}
