package memlimit

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/process"
)

// UsageFunc reports current memory usage in bytes. Implementations must be
// safe for repeated calls on a short sampling interval.
type UsageFunc func() uint64

// RuntimeUsage reports heap bytes currently allocated by the Go runtime.
//
// This is the view debug.SetMemoryLimit itself acts on, which makes it the
// default sampler. It stops the world briefly, so very short sampling
// intervals have a measurable cost.
func RuntimeUsage() uint64 {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.Alloc
}

// ProcessUsage reports the resident set size of the whole process.
//
// Unlike RuntimeUsage this includes memory held outside the Go heap (cgo
// allocations, mapped files, thread stacks). It falls back to RuntimeUsage
// when process inspection is unavailable.
func ProcessUsage() uint64 {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return RuntimeUsage()
	}

	info, err := proc.MemoryInfo()
	if err != nil || info == nil {
		return RuntimeUsage()
	}

	return info.RSS
}
