package parallel

// DefaultFillThreshold is the leaf size below which Fill writes
// sequentially instead of forking.
const DefaultFillThreshold = 1 << 16

// FillOption configures Fill.
type FillOption func(*fillOptions)

type fillOptions struct {
	threshold int
}

// WithFillThreshold overrides DefaultFillThreshold.
func WithFillThreshold(n int) FillOption {
	if n <= 0 {
		panic("parallel: WithFillThreshold: n must be positive")
	}
	return func(o *fillOptions) { o.threshold = n }
}

func gatherFillOptions(opts ...FillOption) fillOptions {
	o := fillOptions{threshold: DefaultFillThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Fill assigns v to every element of s, splitting the work across
// goroutines via Invoke once the slice is larger than the configured
// threshold. It exists for the same reason the C++ original's
// parallel_fill does: building large benchmark inputs without a serial
// loop dominating the benchmark's own setup cost.
func Fill[T any](s []T, v T, opts ...FillOption) {
	o := gatherFillOptions(opts...)
	fillRange(s, v, o.threshold)
}

func fillRange[T any](s []T, v T, threshold int) {
	if len(s) <= threshold {
		for i := range s {
			s[i] = v
		}
		return
	}
	m := len(s) / 2
	Invoke(
		func() { fillRange(s[:m], v, threshold) },
		func() { fillRange(s[m:], v, threshold) },
	)
}
