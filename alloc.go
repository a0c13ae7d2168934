package psort

// safeUint32Buffer attempts to allocate a same-size auxiliary buffer,
// returning nil instead of propagating a failure. A make() of a slice
// whose requested length overflows the address space panics with a
// recoverable error (distinct from the runtime's own unrecoverable
// out-of-memory fatal error for more modest over-commitments the OS
// later fails to back); this recovers that case so the adaptive drivers
// can fall back to their in-place path exactly as the allocation-failure
// contract requires.
func safeUint32Buffer(n int) (buf []uint32) {
	defer func() {
		if recover() != nil {
			buf = nil
		}
	}()
	buf = make([]uint32, n)
	return buf
}

func safeBuffer[T any](src []T) (buf []T) {
	defer func() {
		if recover() != nil {
			buf = nil
		}
	}()
	buf = make([]T, len(src))
	return buf
}
