package chainmap_test

import (
	"fmt"
	"runtime"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Operations int                `json:"operations"`
	NsPerOp    float64            `json:"ns_per_op"`
	Metrics    map[string]float64 `json:"metrics"`
}

const bytesPerMB = 1 << 20

// memUsage renders the live heap and system memory for progress logs
func memUsage() string {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	alloc := float64(ms.Alloc) / bytesPerMB
	sys := float64(ms.Sys) / bytesPerMB
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB", alloc, sys)
}

// memStats samples the same numbers as metric values
func memStats() map[string]float64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return map[string]float64{
		"alloc_mb": float64(ms.Alloc) / bytesPerMB,
		"sys_mb":   float64(ms.Sys) / bytesPerMB,
	}
}
