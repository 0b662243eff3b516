package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/banshee-data/core.report/internal/borehole"
	"github.com/banshee-data/core.report/internal/config"
	"github.com/banshee-data/core.report/internal/monitoring"
	"github.com/banshee-data/core.report/internal/stereonet"
	"github.com/banshee-data/core.report/internal/summary"
)

// handleBorehole orients a whole measurement table against an orientation
// survey and writes the oriented-plane table.
func handleBorehole(args []string) error {
	fs := flag.NewFlagSet("borehole", flag.ExitOnError)
	surveyPath := fs.String("survey", "", "survey station table (depth,bearing,inclination)")
	measurementsPath := fs.String("measurements", "", "raw measurement table (depth,alpha,beta)")
	outputPath := fs.String("output", "", "oriented-plane table destination (default: stdout)")
	bottom := fs.Bool("bottom", false, "beta reference line on the bottom of the core")
	configPath := fs.String("config", "", "processing config file")
	printSummary := fs.Bool("summary", false, "print orientation summary statistics")
	stereonetPath := fs.String("stereonet", "", "write an interactive equal-angle stereonet (HTML)")
	pngPath := fs.String("png", "", "write a static stereonet image (PNG)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *surveyPath == "" || *measurementsPath == "" {
		return fmt.Errorf("--survey and --measurements are required")
	}

	var cfg *config.ProcessingConfig
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	// The flag wins over the config file.
	line := cfg.Line()
	if *bottom {
		line = borehole.Bottom
	}

	stations, err := readSurveyTable(*surveyPath)
	if err != nil {
		return err
	}
	measurements, err := readMeasurementTable(*measurementsPath)
	if err != nil {
		return err
	}
	monitoring.Logf("read %d survey stations and %d measurements (reference line: %s)",
		len(stations), len(measurements), line)

	bh, err := borehole.New(line, measurements, stations)
	if err != nil {
		return err
	}

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output table: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := writePlaneTable(out, bh.OrientedMeasurements, cfg.GetPrecision()); err != nil {
		return err
	}
	if *outputPath != "" {
		monitoring.Logf("wrote %d oriented planes to %s", len(bh.OrientedMeasurements), *outputPath)
	}

	if *printSummary {
		fmt.Println(summary.Compute(bh.OrientedMeasurements))
	}

	if *stereonetPath != "" {
		if err := stereonet.WriteHTML(*stereonetPath, bh.OrientedMeasurements, cfg.GetStereonetMaxPoints()); err != nil {
			return err
		}
		monitoring.Logf("wrote stereonet to %s", *stereonetPath)
	}
	if *pngPath != "" {
		if err := stereonet.WritePNG(*pngPath, bh.OrientedMeasurements); err != nil {
			return err
		}
		monitoring.Logf("wrote stereonet image to %s", *pngPath)
	}
	return nil
}
