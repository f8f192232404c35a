// Package postprocess - confidence filtering and suppression strategies for
// detection results.
package postprocess

import "github.com/nvr-ai/go-refine/detections"

// FilterByConfidence keeps every detection scoring at or above threshold.
// The boundary is inclusive: a detection exactly at threshold survives.
// Input order is preserved and the input slice is never mutated.
func FilterByConfidence(dets []detections.Detection, threshold float64) []detections.Detection {
	filtered := make([]detections.Detection, 0, len(dets))
	for _, d := range dets {
		if d.Confidence >= threshold {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
