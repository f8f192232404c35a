package postprocess

import "github.com/nvr-ai/go-refine/detections"

// Algorithm identifies a suppression strategy.
type Algorithm string

const (
	// AlgorithmFastNMS is greedy IoU-based Non-Maximum Suppression.
	AlgorithmFastNMS Algorithm = "fast_nms"
	// AlgorithmSortConfidence ranks by descending confidence without
	// suppressing anything.
	AlgorithmSortConfidence Algorithm = "sort_confidence"
	// AlgorithmNone passes the filtered set through unchanged.
	AlgorithmNone Algorithm = "none"
)

// Strategy ranks and deduplicates an already confidence-filtered detection
// set.
type Strategy interface {
	// Name returns the algorithm identifier the strategy implements.
	Name() Algorithm
	// Apply returns the surviving detections. Implementations never mutate
	// the input slice.
	Apply(dets []detections.Detection) []detections.Detection
}

// NewStrategy returns the strategy registered under name.
//
// Unrecognized names (and "none") resolve to the identity strategy rather
// than an error. The fallback is deliberate: a misconfigured algorithm
// string must never abort a batch, it just skips suppression.
//
// Arguments:
//   - name: The configured algorithm name.
//   - config: NMS parameters, consulted only by AlgorithmFastNMS.
//
// Returns:
//   - Strategy: The matching strategy, never nil.
func NewStrategy(name Algorithm, config NMSConfig) Strategy {
	switch name {
	case AlgorithmFastNMS:
		return &FastNMS{Config: config}
	case AlgorithmSortConfidence:
		return &ConfidenceSort{}
	default:
		return &Identity{}
	}
}
