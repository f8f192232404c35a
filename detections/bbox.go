package detections

// BBox is an axis-aligned bounding box, nominally (x1,y1,x2,y2).
//
// Upstream sources occasionally emit truncated or inverted boxes. A BBox is
// never rejected for that: malformed boxes simply score zero overlap in
// CalculateIoU, so bad geometry degrades instead of failing a batch.
type BBox []float64

// Valid reports whether the box carries all four coordinates and encloses a
// nonzero area (x2 > x1 and y2 > y1).
func (b BBox) Valid() bool {
	return len(b) >= 4 && b[2] > b[0] && b[3] > b[1]
}

// Width returns x2 - x1, or 0 for a truncated box.
func (b BBox) Width() float64 {
	if len(b) < 4 {
		return 0
	}
	return b[2] - b[0]
}

// Height returns y2 - y1, or 0 for a truncated box.
func (b BBox) Height() float64 {
	if len(b) < 4 {
		return 0
	}
	return b[3] - b[1]
}

// Area returns the signed box area. Inverted boxes yield a non-positive or
// meaningless product; CalculateIoU guards against that via its union check.
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}
