package postprocess

import "github.com/nvr-ai/go-refine/detections"

// ConfidenceSort ranks detections by descending confidence without
// suppressing any of them. No geometry is involved and every input
// detection survives.
type ConfidenceSort struct{}

// Name returns AlgorithmSortConfidence.
func (s *ConfidenceSort) Name() Algorithm { return AlgorithmSortConfidence }

// Apply returns a stable descending-confidence copy of dets.
func (s *ConfidenceSort) Apply(dets []detections.Detection) []detections.Detection {
	return sortByConfidence(dets)
}

// Identity passes detections through untouched, in filter order. It backs
// the "none" algorithm and every unrecognized algorithm name.
type Identity struct{}

// Name returns AlgorithmNone.
func (s *Identity) Name() Algorithm { return AlgorithmNone }

// Apply returns dets unchanged.
func (s *Identity) Apply(dets []detections.Detection) []detections.Detection {
	return dets
}
