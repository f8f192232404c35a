package benchmark

import (
	"runtime"
	"sync"
	"time"

	"github.com/nvr-ai/go-refine/processor"
)

// batchSeed keeps synthetic batches identical across runs so scenario
// results are comparable.
const batchSeed = 42

// Suite manages and executes refinement benchmark scenarios.
type Suite struct {
	config    processor.Config
	scenarios []Scenario
	mu        sync.RWMutex
	results   []PerformanceMetrics
}

// NewSuite creates a benchmark suite that runs every scenario against the
// given refinement configuration.
func NewSuite(config processor.Config) *Suite {
	return &Suite{
		config:    config,
		scenarios: make([]Scenario, 0),
		results:   make([]PerformanceMetrics, 0),
	}
}

// AddScenario adds a test scenario to the benchmark suite.
func (bs *Suite) AddScenario(scenario Scenario) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.scenarios = append(bs.scenarios, scenario)
}

// Run executes every registered scenario in order and returns the collected
// metrics.
func (bs *Suite) Run() []PerformanceMetrics {
	bs.mu.RLock()
	scenarios := make([]Scenario, len(bs.scenarios))
	copy(scenarios, bs.scenarios)
	bs.mu.RUnlock()

	for _, scenario := range scenarios {
		metrics := bs.RunScenario(scenario)
		bs.mu.Lock()
		bs.results = append(bs.results, metrics)
		bs.mu.Unlock()
	}

	bs.mu.RLock()
	defer bs.mu.RUnlock()
	out := make([]PerformanceMetrics, len(bs.results))
	copy(out, bs.results)
	return out
}

// RunScenario executes a single benchmark scenario.
func (bs *Suite) RunScenario(scenario Scenario) PerformanceMetrics {
	metrics := PerformanceMetrics{
		Scenario:  scenario,
		Timestamp: time.Now(),
	}

	dets := GenerateBatch(scenario, batchSeed)

	// Warmup runs.
	for i := 0; i < scenario.WarmupRuns; i++ {
		processor.Process(dets, bs.config)
	}

	var startMem runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&startMem)

	start := time.Now()
	totalProcessingMS := 0.0
	totalSurvivors := 0

	for i := 0; i < scenario.Iterations; i++ {
		result := processor.Process(dets, bs.config)
		totalProcessingMS += result.ProcessingTimeMS
		totalSurvivors += result.FilteredCount
	}

	metrics.TotalDuration = time.Since(start)

	var endMem runtime.MemStats
	runtime.ReadMemStats(&endMem)
	metrics.MemoryStats = MemoryMetrics{
		AllocBytes:      endMem.Alloc,
		TotalAllocBytes: endMem.TotalAlloc - startMem.TotalAlloc,
		SysBytes:        endMem.Sys,
		NumGC:           endMem.NumGC - startMem.NumGC,
	}

	if scenario.Iterations > 0 {
		metrics.BatchesPerSecond = float64(scenario.Iterations) / metrics.TotalDuration.Seconds()
		metrics.MeanProcessingMS = totalProcessingMS / float64(scenario.Iterations)
		metrics.MeanSurvivorCount = float64(totalSurvivors) / float64(scenario.Iterations)
	}

	return metrics
}
