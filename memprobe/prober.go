package memprobe

import "github.com/shirou/gopsutil/v3/mem"

// Prober reports physical memory in megabyte granularity. Read may return
// zero values with a non-nil error when the underlying platform query
// fails; callers that treat "unknown" as "memory plentiful" should check
// the error rather than treating a zero-valued result as scarcity.
type Prober interface {
	Read() (totalMB, usedMB uint64, err error)
}

type gopsutilProber struct{}

// Default returns a Prober backed by gopsutil's virtual memory stats.
func Default() Prober {
	return gopsutilProber{}
}

func (gopsutilProber) Read() (totalMB, usedMB uint64, err error) {
	stat, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	const mb = 1 << 20
	return stat.Total / mb, stat.Used / mb, nil
}

type staticProber struct {
	totalMB, usedMB uint64
}

// Static returns a Prober that always reports the given fixed figures,
// useful for exercising adaptive-driver decisions deterministically in
// tests without depending on the host's actual memory state.
func Static(totalMB, usedMB uint64) Prober {
	return staticProber{totalMB: totalMB, usedMB: usedMB}
}

func (s staticProber) Read() (totalMB, usedMB uint64, err error) {
	return s.totalMB, s.usedMB, nil
}
