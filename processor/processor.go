package processor

import (
	"time"

	"github.com/nvr-ai/go-refine/detections"
	"github.com/nvr-ai/go-refine/postprocess"
)

// Result captures the output of one refinement run. It is created once per
// Process call and fully owned by the caller afterwards.
type Result struct {
	// OptimizedDetections are the survivors, in the order the strategy
	// produced them.
	OptimizedDetections []detections.Detection `json:"optimized_detections"`
	// ProcessingTimeMS is elapsed wall time in fractional milliseconds.
	ProcessingTimeMS float64 `json:"processing_time_ms"`
	// OriginalCount is the pre-filter input size.
	OriginalCount int `json:"original_count"`
	// FilteredCount is the post-strategy output size.
	FilteredCount int `json:"filtered_count"`
	// AlgorithmUsed is the configured algorithm name, recorded as configured
	// even when an unrecognized name fell back to the identity strategy.
	AlgorithmUsed string `json:"algorithm_used"`
}

// Process refines one detection batch: confidence filter, then the
// configured suppression strategy.
//
// The run is synchronous and cannot fail. Malformed bounding boxes score
// zero IoU and unrecognized algorithm names pass the filtered detections
// through unchanged, so there are no fallible branches. Timing uses the
// monotonic clock at microsecond resolution, converted to fractional
// milliseconds.
//
// Process is safe to call concurrently as long as each call owns its own
// detection slice; Config is read-only and may be shared.
//
// Arguments:
//   - dets: The detection batch to refine. Never mutated.
//   - config: The immutable configuration snapshot for this run.
//
// Returns:
//   - Result: Surviving detections plus counts and timing metadata.
func Process(dets []detections.Detection, config Config) Result {
	start := time.Now()

	filtered := postprocess.FilterByConfidence(dets, config.ConfidenceThreshold)
	strategy := postprocess.NewStrategy(config.Algorithm, postprocess.NMSConfig{
		IoUThreshold: config.NMSThreshold,
		ClassAware:   config.ClassAwareNMS,
	})
	optimized := strategy.Apply(filtered)

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	return Result{
		OptimizedDetections: optimized,
		ProcessingTimeMS:    elapsed,
		OriginalCount:       len(dets),
		FilteredCount:       len(optimized),
		AlgorithmUsed:       string(config.Algorithm),
	}
}
