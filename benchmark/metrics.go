// Package benchmark - Functionality for running refinement benchmarks.
package benchmark

import "time"

// PerformanceMetrics captures detailed performance data for one scenario.
type PerformanceMetrics struct {
	Scenario          Scenario      `json:"scenario"`
	Timestamp         time.Time     `json:"timestamp"`
	TotalDuration     time.Duration `json:"total_duration"`
	BatchesPerSecond  float64       `json:"batches_per_second"`
	MeanProcessingMS  float64       `json:"mean_processing_ms"`
	MeanSurvivorCount float64       `json:"mean_survivor_count"`
	MemoryStats       MemoryMetrics `json:"memory_stats"`
}

// MemoryMetrics captures memory usage statistics across a scenario run.
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
}
