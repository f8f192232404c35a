// Command refine filters low-confidence detections and removes redundant
// overlaps from a JSON detection batch, writing a ranked report to a file or
// standard output.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/nvr-ai/go-refine/batch"
	"github.com/nvr-ai/go-refine/processor"
)

// processorName identifies this binary in report envelopes.
const processorName = "go-refine"

func main() {
	var (
		inputFile  string
		outputFile string
	)
	flag.StringVar(&inputFile, "input", "", "Input JSON file with detections (required)")
	flag.StringVar(&outputFile, "output", "", "Output JSON file (default: stdout)")
	flag.Parse()

	logger := logrus.New()

	if inputFile == "" {
		logger.Error("Input file is required (-input=file.json)")
		os.Exit(1)
	}

	config := processor.FromEnv()
	logger.WithFields(logrus.Fields{
		"algorithm":            config.Algorithm,
		"nms_threshold":        config.NMSThreshold,
		"confidence_threshold": config.ConfidenceThreshold,
	}).Info("Loaded configuration")

	b, err := batch.Load(inputFile)
	if err != nil {
		logger.WithError(err).Error("Failed to load detection batch")
		os.Exit(1)
	}

	result := processor.Process(b.Detections, config)
	logger.WithFields(logrus.Fields{
		"original_count":     result.OriginalCount,
		"filtered_count":     result.FilteredCount,
		"processing_time_ms": result.ProcessingTimeMS,
	}).Info("Refined detection batch")

	report := batch.NewReport(b, result, processorName)
	if outputFile != "" {
		err = report.WriteFile(outputFile)
	} else {
		err = report.Write(os.Stdout)
	}
	if err != nil {
		logger.WithError(err).Error("Failed to write report")
		os.Exit(1)
	}
}
