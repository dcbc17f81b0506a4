// benchmark.go
// A reusable benchmarking module for AA Profiler
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

// Usage is the resource footprint of one benchmarked call.
type Usage struct {
	Elapsed       time.Duration
	AllocMB       float64
	TotalAllocMB  float64
	HeapMB        float64
	GCCycles      uint32
	StartRoutines int
	EndRoutines   int
}

// Measure runs f and reports its runtime and memory usage.
func Measure(f func()) Usage {
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	startGoroutines := runtime.NumGoroutine()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	return Usage{
		Elapsed:       elapsed,
		AllocMB:       toMB(int64(memEnd.Alloc) - int64(memStart.Alloc)),
		TotalAllocMB:  toMB(int64(memEnd.TotalAlloc - memStart.TotalAlloc)),
		HeapMB:        toMB(int64(memEnd.HeapAlloc)),
		GCCycles:      memEnd.NumGC - memStart.NumGC,
		StartRoutines: startGoroutines,
		EndRoutines:   runtime.NumGoroutine(),
	}
}

func toMB(b int64) float64 {
	return float64(b) / 1024.0 / 1024.0
}

// Run wraps any function and logs its runtime and memory usage.
func Run(label string, f func()) {
	logger := log.WithPrefix("benchmark")
	logger.Info("running", "label", label)

	// Snapshot environment info
	host, _ := os.Hostname()
	logger.Info("environment",
		"timestamp", time.Now().Format(time.RFC1123),
		"host", host,
		"go", runtime.Version(),
		"os_arch", runtime.GOOS+"/"+runtime.GOARCH,
		"cpus", runtime.NumCPU(),
	)

	u := Measure(f)

	logger.Info("finished",
		"elapsed", u.Elapsed,
		"mem_used_mb", u.AllocMB,
		"total_alloc_mb", u.TotalAllocMB,
		"heap_mb", u.HeapMB,
		"gc_cycles", u.GCCycles,
		"goroutines", [2]int{u.StartRoutines, u.EndRoutines},
	)
}
