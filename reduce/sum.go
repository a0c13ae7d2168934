package reduce

import "github.com/katalvlaran/psort/parallel"

// Number is the set of types Sum accepts: any type the four arithmetic
// operators apply to meaningfully.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DefaultThreshold is the leaf size below which Sum accumulates
// sequentially rather than forking.
const DefaultThreshold = 1 << 14

// Option configures Sum.
type Option func(*options)

type options struct {
	threshold int
}

// WithThreshold overrides DefaultThreshold.
func WithThreshold(n int) Option {
	if n <= 0 {
		panic("reduce: WithThreshold: n must be positive")
	}
	return func(o *options) { o.threshold = n }
}

func gatherOptions(opts ...Option) options {
	o := options{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Sum computes the sum of a[l:r] (half-open range). Associativity is
// assumed; no left-to-right evaluation order is guaranteed once the range
// is large enough to fork.
func Sum[T Number](a []T, l, r int, opts ...Option) T {
	if r <= l {
		var zero T
		return zero
	}
	o := gatherOptions(opts...)
	return sumRange(a, l, r, o.threshold)
}

func sumRange[T Number](a []T, l, r int, threshold int) T {
	if r-l <= threshold {
		var acc T
		for i := l; i < r; i++ {
			acc += a[i]
		}
		return acc
	}

	m := l + (r-l)/2
	var left, right T
	parallel.Invoke(
		func() { left = sumRange(a, l, m, threshold) },
		func() { right = sumRange(a, m, r, threshold) },
	)
	return left + right
}
