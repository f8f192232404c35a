package processor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-refine/detections"
	"github.com/nvr-ai/go-refine/postprocess"
)

func TestProcess_DisjointBoxesScenario(t *testing.T) {
	dets := []detections.Detection{
		{ObjectType: "person", Confidence: 0.85, BBox: detections.BBox{100, 100, 200, 300}, Position: "center"},
		{ObjectType: "car", Confidence: 0.92, BBox: detections.BBox{300, 150, 450, 280}, Position: "right"},
	}

	result := Process(dets, DefaultConfig())

	assert.Equal(t, 2, result.OriginalCount)
	assert.Equal(t, 2, result.FilteredCount)
	assert.Equal(t, "fast_nms", result.AlgorithmUsed)
	assert.GreaterOrEqual(t, result.ProcessingTimeMS, 0.0)

	want := []detections.Detection{dets[1], dets[0]} // ranked by confidence
	if diff := cmp.Diff(want, result.OptimizedDetections); diff != "" {
		t.Errorf("unexpected detections (-want +got):\n%s", diff)
	}
}

func TestProcess_SuppressesDuplicate(t *testing.T) {
	dets := []detections.Detection{
		{ObjectType: "person", Confidence: 0.9, BBox: detections.BBox{100, 100, 200, 200}},
		{ObjectType: "person", Confidence: 0.7, BBox: detections.BBox{100, 100, 200, 200}},
	}

	result := Process(dets, DefaultConfig())

	require.Len(t, result.OptimizedDetections, 1)
	assert.Equal(t, 0.9, result.OptimizedDetections[0].Confidence)
	assert.Equal(t, 2, result.OriginalCount)
	assert.Equal(t, 1, result.FilteredCount)
}

func TestProcess_AllBelowThreshold(t *testing.T) {
	dets := []detections.Detection{
		{ObjectType: "person", Confidence: 0.85, BBox: detections.BBox{100, 100, 200, 300}},
		{ObjectType: "car", Confidence: 0.92, BBox: detections.BBox{300, 150, 450, 280}},
	}

	config := DefaultConfig()
	config.ConfidenceThreshold = 0.95

	result := Process(dets, config)

	assert.Equal(t, 2, result.OriginalCount)
	assert.Equal(t, 0, result.FilteredCount)
	assert.Empty(t, result.OptimizedDetections)
}

func TestProcess_UnknownAlgorithmFallsBack(t *testing.T) {
	dets := []detections.Detection{
		{ObjectType: "b", Confidence: 0.7, BBox: detections.BBox{0, 0, 10, 10}},
		{ObjectType: "a", Confidence: 0.9, BBox: detections.BBox{0, 0, 10, 10}},
	}

	config := DefaultConfig()
	config.Algorithm = "unknown_xyz"

	result := Process(dets, config)

	// Identity fallback: filter order preserved, nothing suppressed, and the
	// configured name is still reported.
	assert.Equal(t, "unknown_xyz", result.AlgorithmUsed)
	if diff := cmp.Diff(dets, result.OptimizedDetections); diff != "" {
		t.Errorf("fallback altered detections (-want +got):\n%s", diff)
	}
}

func TestProcess_SortConfidenceKeepsAll(t *testing.T) {
	dets := []detections.Detection{
		{ObjectType: "a", Confidence: 0.61, BBox: detections.BBox{0, 0, 10, 10}},
		{ObjectType: "b", Confidence: 0.99, BBox: detections.BBox{0, 0, 10, 10}},
		{ObjectType: "c", Confidence: 0.75, BBox: detections.BBox{0, 0, 10, 10}},
	}

	config := DefaultConfig()
	config.Algorithm = postprocess.AlgorithmSortConfidence

	result := Process(dets, config)

	// Identical boxes, but sort_confidence never suppresses.
	require.Len(t, result.OptimizedDetections, 3)
	for i := 0; i < len(result.OptimizedDetections)-1; i++ {
		assert.GreaterOrEqual(t,
			result.OptimizedDetections[i].Confidence,
			result.OptimizedDetections[i+1].Confidence)
	}
}

func TestProcess_CountInvariant(t *testing.T) {
	dets := []detections.Detection{
		{ObjectType: "person", Confidence: 0.9, BBox: detections.BBox{0, 0, 100, 100}},
		{ObjectType: "person", Confidence: 0.8, BBox: detections.BBox{5, 5, 105, 105}},
		{ObjectType: "person", Confidence: 0.4, BBox: detections.BBox{200, 200, 300, 300}},
	}

	for _, algorithm := range []postprocess.Algorithm{
		postprocess.AlgorithmFastNMS,
		postprocess.AlgorithmSortConfidence,
		postprocess.AlgorithmNone,
		"bogus",
	} {
		config := DefaultConfig()
		config.Algorithm = algorithm

		result := Process(dets, config)
		assert.LessOrEqual(t, result.FilteredCount, result.OriginalCount,
			"algorithm %q grew the detection set", algorithm)
		assert.Len(t, result.OptimizedDetections, result.FilteredCount)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	result := Process(nil, DefaultConfig())

	assert.Equal(t, 0, result.OriginalCount)
	assert.Equal(t, 0, result.FilteredCount)
	assert.Empty(t, result.OptimizedDetections)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 0.5, config.NMSThreshold)
	assert.Equal(t, 0.6, config.ConfidenceThreshold)
	assert.Equal(t, postprocess.AlgorithmFastNMS, config.Algorithm)
	assert.False(t, config.ClassAwareNMS)
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvNMSThreshold, "")
	t.Setenv(EnvConfidenceThreshold, "")
	t.Setenv(EnvAlgorithm, "")
	t.Setenv(EnvClassAware, "")

	assert.Equal(t, DefaultConfig(), FromEnv())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvNMSThreshold, "0.7")
	t.Setenv(EnvConfidenceThreshold, "0.25")
	t.Setenv(EnvAlgorithm, "sort_confidence")
	t.Setenv(EnvClassAware, "true")

	config := FromEnv()

	assert.Equal(t, 0.7, config.NMSThreshold)
	assert.Equal(t, 0.25, config.ConfidenceThreshold)
	assert.Equal(t, postprocess.AlgorithmSortConfidence, config.Algorithm)
	assert.True(t, config.ClassAwareNMS)
}

func TestFromEnv_UnparseableFallsBack(t *testing.T) {
	t.Setenv(EnvNMSThreshold, "not-a-number")
	t.Setenv(EnvConfidenceThreshold, "")
	t.Setenv(EnvAlgorithm, "")
	t.Setenv(EnvClassAware, "maybe")

	config := FromEnv()

	assert.Equal(t, 0.5, config.NMSThreshold)
	assert.False(t, config.ClassAwareNMS)
}
