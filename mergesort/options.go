package mergesort

import "github.com/katalvlaran/psort/merge"

// DefaultParallelBaseline is the baseline leaf-size threshold (in
// elements) below which the parallel drivers stop forking and run the
// serial kernel instead, before autoscaling to core count.
const DefaultParallelBaseline = 24576

// DefaultMergeCutoff is the sequential cutoff forwarded to the package
// merge below which Parallel/ParallelInPlace stop forking.
const DefaultMergeCutoff = merge.DefaultSequentialCutoff

// Option configures a sort driver.
type Option func(*options)

type options struct {
	stable       bool
	parallelBase int
	mergeCutoff  int
}

// WithStable requests a stable sort. SortInplace is the only driver whose
// leaf choice differs by this flag (true selects the insertion-sort leaf
// everywhere; false permits an unstable leaf sort); the other drivers are
// always stable via their scratch-merge leaves regardless of this option.
func WithStable(stable bool) Option {
	return func(o *options) { o.stable = stable }
}

// WithParallelBaseline overrides the pre-autoscale leaf-threshold
// baseline used by the parallel and in-place drivers.
func WithParallelBaseline(n int) Option {
	if n <= 0 {
		panic("mergesort: WithParallelBaseline: n must be positive")
	}
	return func(o *options) { o.parallelBase = n }
}

// WithMergeCutoff overrides the sequential cutoff forwarded to the
// underlying parallel merge.
func WithMergeCutoff(n int) Option {
	if n <= 0 {
		panic("mergesort: WithMergeCutoff: n must be positive")
	}
	return func(o *options) { o.mergeCutoff = n }
}

func gatherOptions(opts ...Option) options {
	o := options{
		stable:       true,
		parallelBase: DefaultParallelBaseline,
		mergeCutoff:  DefaultMergeCutoff,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
