package psort

import "github.com/katalvlaran/psort/memprobe"

// DefaultMemoryFraction is the anticipated-usage-over-total-memory ratio
// above which the adaptive drivers refuse to allocate an auxiliary
// buffer and fall back to an in-place strategy.
const DefaultMemoryFraction = 0.75

// AdaptiveOption configures an adaptive top driver.
type AdaptiveOption func(*adaptiveOptions)

type adaptiveOptions struct {
	memFraction float64
	prober      memprobe.Prober
	stable      bool
}

// WithMemoryFraction overrides DefaultMemoryFraction. f must be in (0, 1].
func WithMemoryFraction(f float64) AdaptiveOption {
	if f <= 0 || f > 1 {
		panic("psort: WithMemoryFraction: f must be in (0, 1]")
	}
	return func(o *adaptiveOptions) { o.memFraction = f }
}

// WithProber overrides the memory probe used to decide between the
// in-place and not-in-place paths. Tests use this to exercise both
// branches deterministically instead of depending on host memory state.
// A probe that returns an error, or reports a total of zero, is treated
// as "memory plentiful": the drivers then take the not-in-place path.
func WithProber(p memprobe.Prober) AdaptiveOption {
	if p == nil {
		panic("psort: WithProber: p must not be nil")
	}
	return func(o *adaptiveOptions) { o.prober = p }
}

// WithAdaptiveStable requests a stable in-place fallback. Only affects
// SortAdaptive's in-place branch; SortLinearInplaceAdaptive takes its
// stability from its own stable argument and ignores this option. The
// not-in-place (scratch or radix) branch is always stable regardless.
func WithAdaptiveStable(stable bool) AdaptiveOption {
	return func(o *adaptiveOptions) { o.stable = stable }
}

func gatherAdaptiveOptions(opts ...AdaptiveOption) adaptiveOptions {
	o := adaptiveOptions{
		memFraction: DefaultMemoryFraction,
		prober:      memprobe.Default(),
		stable:      true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// memoryIsScarce reports whether the anticipated memory usage of
// allocating an auxiliary buffer of elemSize*n bytes, on top of what is
// already used, would exceed o.memFraction of total physical memory. A
// probe failure (err != nil, or total == 0) is treated as "memory
// plentiful" — conservative toward the linear-time / not-in-place path,
// as documented for callers operating under strict memory budgets.
func memoryIsScarce(o adaptiveOptions, elemSize, n int) bool {
	totalMB, usedMB, err := o.prober.Read()
	if err != nil || totalMB == 0 {
		return false
	}
	anticipatedMB := uint64(elemSize*n)>>20 + usedMB
	fraction := float64(anticipatedMB) / float64(totalMB)
	return fraction > o.memFraction
}
