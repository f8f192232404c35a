// Package processor - the detection refinement orchestrator.
package processor

import (
	"os"
	"strconv"

	"github.com/nvr-ai/go-refine/postprocess"
)

// Environment variables consulted by FromEnv.
const (
	EnvNMSThreshold        = "CONFIG_NMS_THRESHOLD"
	EnvConfidenceThreshold = "CONFIG_CONFIDENCE_THRESHOLD"
	EnvAlgorithm           = "CONFIG_ALGORITHM"
	EnvClassAware          = "CONFIG_CLASS_AWARE"
)

// Config represents the parameters for one refinement run.
//
// A Config is a read-only snapshot: construct it once (DefaultConfig or
// FromEnv) and pass it by value into Process. The package holds no ambient
// state, so a single Config may back concurrent Process calls.
type Config struct {
	// NMSThreshold controls the Non-Maximum Suppression IoU threshold.
	NMSThreshold float64 `json:"nms_threshold"`
	// ConfidenceThreshold filters detections below this confidence level.
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	// Algorithm selects the suppression strategy.
	Algorithm postprocess.Algorithm `json:"algorithm"`
	// ClassAwareNMS restricts suppression to detections of the same
	// ObjectType. Off by default.
	ClassAwareNMS bool `json:"class_aware_nms"`
}

// DefaultConfig returns a production-ready configuration with the stated
// defaults: NMS at 0.5 IoU, confidence floor at 0.6, fast_nms suppression.
func DefaultConfig() Config {
	return Config{
		NMSThreshold:        0.5,
		ConfidenceThreshold: 0.6,
		Algorithm:           postprocess.AlgorithmFastNMS,
	}
}

// FromEnv builds a Config from the CONFIG_* environment variables, falling
// back to the DefaultConfig value for any variable that is unset or does not
// parse. Call it once at startup; the result is an immutable snapshot.
func FromEnv() Config {
	config := DefaultConfig()
	if v := os.Getenv(EnvNMSThreshold); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.NMSThreshold = f
		}
	}
	if v := os.Getenv(EnvConfidenceThreshold); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.ConfidenceThreshold = f
		}
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		config.Algorithm = postprocess.Algorithm(v)
	}
	if v := os.Getenv(EnvClassAware); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.ClassAwareNMS = b
		}
	}
	return config
}
