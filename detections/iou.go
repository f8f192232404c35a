package detections

import "math"

// CalculateIoU returns the Intersection over Union of two bounding boxes.
//
// IoU (Intersection over Union) measures the extent of overlap between two
// axis-aligned rectangles:
//
//	IoU = Area of Intersection / Area of Union
//
//   - 1.0 means the boxes are identical.
//   - 0.0 means the boxes do not overlap at all.
//
// The intersection rectangle is (max(x1), max(y1), min(x2), min(y2)); when it
// is empty or inverted the function returns 0.0 immediately. The union uses
// the inclusion-exclusion principle, Area(A) + Area(B) - Area(Intersection),
// and a non-positive union also yields 0.0 so the division can never blow up.
// Boxes with fewer than four coordinates are treated as non-overlapping
// rather than as errors.
//
// Arguments:
//   - a: The first bounding box (x1,y1,x2,y2).
//   - b: The second bounding box.
//
// Returns:
//   - float64: Overlap ratio between 0.0 and 1.0. Pure and O(1).
func CalculateIoU(a, b BBox) float64 {
	if len(a) < 4 || len(b) < 4 {
		return 0.0
	}

	ix1 := math.Max(a[0], b[0])
	iy1 := math.Max(a[1], b[1])
	ix2 := math.Min(a[2], b[2])
	iy2 := math.Min(a[3], b[3])

	if ix2 <= ix1 || iy2 <= iy1 {
		return 0.0
	}

	intersection := (ix2 - ix1) * (iy2 - iy1)
	union := a.Area() + b.Area() - intersection
	if union <= 0 {
		return 0.0
	}

	return intersection / union
}
