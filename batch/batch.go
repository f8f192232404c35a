// Package batch - JSON ingestion and report envelopes around the refinement
// core.
package batch

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-refine/detections"
)

// Batch is the input envelope an upstream detection source produces.
type Batch struct {
	// Timestamp is the upstream capture time, passed through verbatim.
	Timestamp string `json:"timestamp"`
	// Source identifies the producing camera or pipeline stage.
	Source string `json:"source"`
	// Detections is the ordered detection set for this batch.
	Detections []detections.Detection `json:"detections"`
}

// Load reads and decodes a detection batch from a JSON file.
//
// Arguments:
//   - path: Path to the input JSON file.
//
// Returns:
//   - *Batch: The decoded batch.
//   - error: Wrapped read or parse failure.
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading input file")
	}

	var b Batch
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrap(err, "parsing input JSON")
	}
	return &b, nil
}
