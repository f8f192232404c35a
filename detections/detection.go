// Package detections - core detection records shared across the refinement pipeline.
package detections

// Detection represents a single scored detection produced by an upstream model.
//
// A Detection is immutable once constructed; pipeline stages copy rather than
// alias, so callers keep full ownership of their input slices.
type Detection struct {
	// ObjectType is the detected class label (e.g. "person", "car").
	ObjectType string `json:"object_type"`
	// Confidence is the detector's certainty score, semantically a
	// probability in [0,1] though the range is not enforced.
	Confidence float64 `json:"confidence"`
	// BBox is the axis-aligned bounding box of the detection.
	BBox BBox `json:"bbox"`
	// Position is a coarse location label (e.g. "center", "bottom-left").
	Position string `json:"position"`
}
