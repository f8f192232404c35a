package batch

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-refine/processor"
)

// Report is the output envelope wrapping a refinement result with batch
// provenance. The embedded Result contributes the optimized_detections,
// processing_time_ms, original_count, filtered_count and algorithm_used
// fields of the wire format.
type Report struct {
	// ID uniquely identifies this report.
	ID string `json:"id"`
	// Timestamp is the report creation time, RFC 3339 in UTC.
	Timestamp string `json:"timestamp"`
	// Source is carried over from the input batch.
	Source string `json:"source,omitempty"`
	// Processor names the program that produced the report.
	Processor string `json:"processor"`

	processor.Result
}

// NewReport wraps a refinement result with provenance from its input batch.
func NewReport(b *Batch, result processor.Result, processorName string) *Report {
	return &Report{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    b.Source,
		Processor: processorName,
		Result:    result,
	}
}

// Write renders the report as indented JSON to w.
func (r *Report) Write(w io.Writer) error {
	data, err := r.marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing report")
}

// WriteFile writes the report as indented JSON to path.
func (r *Report) WriteFile(path string) error {
	data, err := r.marshal()
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "writing output file")
}

func (r *Report) marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling report")
	}
	return append(data, '\n'), nil
}
