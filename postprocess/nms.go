package postprocess

import (
	"sort"

	"github.com/nvr-ai/go-refine/detections"
)

// NMSConfig defines parameters for Non-Maximum Suppression.
type NMSConfig struct {
	// IoUThreshold is the overlap above which (strictly greater than) a
	// lower-ranked detection is suppressed.
	IoUThreshold float64
	// ClassAware suppresses only detections sharing the anchor's ObjectType
	// when true.
	ClassAware bool
}

// FastNMS is the greedy Non-Maximum Suppression strategy.
type FastNMS struct {
	Config NMSConfig
}

// Name returns AlgorithmFastNMS.
func (s *FastNMS) Name() Algorithm { return AlgorithmFastNMS }

// Apply filters overlapping detections using greedy Non-Maximum Suppression.
//
// Detections are ranked by descending confidence; the sort is stable, so
// equal scores keep their input order and the output is deterministic for
// identical inputs. Scanning in rank order, each surviving detection
// suppresses every later unsuppressed detection whose IoU with it strictly
// exceeds the configured threshold. O(n²) in the filtered detection count,
// which is fine for the tens-to-hundreds of boxes a frame produces.
//
// Arguments:
//   - dets: Detections to deduplicate, in any order.
//
// Returns:
//   - Surviving detections in descending-confidence order. Returns nil when
//     no detections are provided.
func (s *FastNMS) Apply(dets []detections.Detection) []detections.Detection {
	n := len(dets)
	if n == 0 {
		return nil
	}

	sorted := sortByConfidence(dets)
	kept := make([]detections.Detection, 0, n)
	suppressed := make([]bool, n)

	for i := 0; i < n; i++ {
		if suppressed[i] {
			continue
		}

		anchor := sorted[i]
		kept = append(kept, anchor)

		for j := i + 1; j < n; j++ {
			if suppressed[j] {
				continue
			}
			if s.Config.ClassAware && anchor.ObjectType != sorted[j].ObjectType {
				continue
			}
			if detections.CalculateIoU(anchor.BBox, sorted[j].BBox) > s.Config.IoUThreshold {
				suppressed[j] = true
			}
		}
	}

	return kept
}

// sortByConfidence returns a copy of dets in descending-confidence order.
// The sort is stable, so ties resolve to original input order.
func sortByConfidence(dets []detections.Detection) []detections.Detection {
	sorted := make([]detections.Detection, len(dets))
	copy(sorted, dets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})
	return sorted
}
