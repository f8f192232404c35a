package benchmark

import (
	"fmt"
	"math/rand"

	"github.com/nvr-ai/go-refine/detections"
)

// Scenario describes one synthetic refinement workload.
type Scenario struct {
	Name string `json:"name"`
	// DetectionCount is the batch size fed into each iteration.
	DetectionCount int `json:"detection_count"`
	// OverlapFraction is the share of detections stacked onto a shared
	// anchor box, i.e. how much work NMS gets.
	OverlapFraction float64 `json:"overlap_fraction"`
	Iterations      int     `json:"iterations"`
	WarmupRuns      int     `json:"warmup_runs"`
}

// ScenarioBuilder helps build scenarios with a fluent API.
type ScenarioBuilder struct {
	scenario Scenario
}

// NewScenarioBuilder creates a new scenario builder with sane defaults.
func NewScenarioBuilder(name string) *ScenarioBuilder {
	return &ScenarioBuilder{
		scenario: Scenario{
			Name:           name,
			DetectionCount: 100,
			Iterations:     100,
			WarmupRuns:     10,
		},
	}
}

// WithDetectionCount sets the synthetic batch size.
func (sb *ScenarioBuilder) WithDetectionCount(n int) *ScenarioBuilder {
	sb.scenario.DetectionCount = n
	return sb
}

// WithOverlapFraction sets the share of overlapping detections.
func (sb *ScenarioBuilder) WithOverlapFraction(f float64) *ScenarioBuilder {
	sb.scenario.OverlapFraction = f
	return sb
}

// WithIterations sets the number of measured iterations.
func (sb *ScenarioBuilder) WithIterations(n int) *ScenarioBuilder {
	sb.scenario.Iterations = n
	return sb
}

// WithWarmupRuns sets the number of unmeasured warmup runs.
func (sb *ScenarioBuilder) WithWarmupRuns(n int) *ScenarioBuilder {
	sb.scenario.WarmupRuns = n
	return sb
}

// Build returns the configured scenario.
func (sb *ScenarioBuilder) Build() Scenario {
	return sb.scenario
}

// DefaultScenarios sweeps batch size and overlap density.
func DefaultScenarios() []Scenario {
	scenarios := make([]Scenario, 0, 9)
	for _, count := range []int{10, 100, 500} {
		for _, overlap := range []float64{0.0, 0.5, 0.9} {
			scenarios = append(scenarios, NewScenarioBuilder(
				fmt.Sprintf("n%d_overlap%.0f", count, overlap*100)).
				WithDetectionCount(count).
				WithOverlapFraction(overlap).
				Build())
		}
	}
	return scenarios
}

// classLabels cycles through a few plausible object types.
var classLabels = []string{"person", "car", "truck", "bicycle", "dog"}

// GenerateBatch synthesizes a deterministic detection batch for a scenario.
// OverlapFraction of the detections are jittered copies of a shared anchor
// box so suppression has real work to do; the remainder are spread out and
// disjoint.
func GenerateBatch(scenario Scenario, seed int64) []detections.Detection {
	rng := rand.New(rand.NewSource(seed))
	dets := make([]detections.Detection, 0, scenario.DetectionCount)

	overlapping := int(float64(scenario.DetectionCount) * scenario.OverlapFraction)
	for i := 0; i < scenario.DetectionCount; i++ {
		var box detections.BBox
		if i < overlapping {
			// Jitter around a shared anchor at (100,100)-(200,200).
			dx := rng.Float64() * 10
			dy := rng.Float64() * 10
			box = detections.BBox{100 + dx, 100 + dy, 200 + dx, 200 + dy}
		} else {
			// Disjoint 50x50 boxes on a 120px grid.
			x := float64((i % 30) * 120)
			y := float64((i / 30) * 120)
			box = detections.BBox{x, y, x + 50, y + 50}
		}
		dets = append(dets, detections.Detection{
			ObjectType: classLabels[i%len(classLabels)],
			Confidence: 0.3 + rng.Float64()*0.7,
			BBox:       box,
			Position:   "center",
		})
	}
	return dets
}
