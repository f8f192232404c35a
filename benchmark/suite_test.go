package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-refine/processor"
)

func TestGenerateBatch_Deterministic(t *testing.T) {
	scenario := NewScenarioBuilder("test").
		WithDetectionCount(50).
		WithOverlapFraction(0.5).
		Build()

	a := GenerateBatch(scenario, 7)
	b := GenerateBatch(scenario, 7)

	require.Len(t, a, 50)
	assert.Equal(t, a, b)
}

func TestGenerateBatch_OverlapShare(t *testing.T) {
	scenario := NewScenarioBuilder("overlap").
		WithDetectionCount(10).
		WithOverlapFraction(1.0).
		Build()

	dets := GenerateBatch(scenario, 1)

	// Fully overlapping batch collapses hard under NMS.
	config := processor.DefaultConfig()
	config.ConfidenceThreshold = 0.0
	result := processor.Process(dets, config)
	assert.Less(t, result.FilteredCount, result.OriginalCount)
}

func TestSuite_RunScenario(t *testing.T) {
	suite := NewSuite(processor.DefaultConfig())
	scenario := NewScenarioBuilder("small").
		WithDetectionCount(20).
		WithOverlapFraction(0.5).
		WithIterations(5).
		WithWarmupRuns(1).
		Build()

	metrics := suite.RunScenario(scenario)

	assert.Equal(t, scenario, metrics.Scenario)
	assert.Greater(t, metrics.BatchesPerSecond, 0.0)
	assert.GreaterOrEqual(t, metrics.MeanSurvivorCount, 0.0)
	assert.Greater(t, metrics.TotalDuration.Nanoseconds(), int64(0))
}

func TestSuite_RunCollectsAllScenarios(t *testing.T) {
	suite := NewSuite(processor.DefaultConfig())
	for _, scenario := range DefaultScenarios()[:3] {
		scenario.Iterations = 2
		scenario.WarmupRuns = 0
		suite.AddScenario(scenario)
	}

	results := suite.Run()

	require.Len(t, results, 3)
}
