package main

import (
	"flag"
	"fmt"

	"github.com/banshee-data/core.report/internal/borehole"
)

// handleOrient runs the single-measurement mode: one (bearing, inclination,
// alpha, beta) tuple in, one plane out.
func handleOrient(args []string) error {
	fs := flag.NewFlagSet("orient", flag.ExitOnError)
	bearing := fs.Float64("bearing", 0, "hole bearing, clockwise from north [0, 360]")
	inclination := fs.Float64("inclination", 0, "hole inclination from horizontal, positive down [0, 90]")
	alpha := fs.Float64("alpha", 0, "alpha core angle [0, 90]")
	beta := fs.Float64("beta", 0, "beta core angle [0, 360]")
	bottom := fs.Bool("bottom", false, "beta reference line on the bottom of the core")
	if err := fs.Parse(args); err != nil {
		return err
	}

	line := borehole.Top
	if *bottom {
		line = borehole.Bottom
	}

	// Users quote a downward hole as a positive angle; the transform
	// treats downward drilling as negative.
	plane, err := borehole.AlphaBeta(*bearing, -*inclination, *alpha, *beta, line)
	if err != nil {
		return err
	}

	fmt.Printf("strike:        %8.2f\n", plane.Strike)
	fmt.Printf("dip:           %8.2f\n", plane.Dip)
	fmt.Printf("dip direction: %8.2f\n", plane.DipDirection)
	fmt.Printf("pole trend:    %8.2f\n", plane.Pole.Trend)
	fmt.Printf("pole plunge:   %8.2f\n", plane.Pole.Plunge)
	return nil
}
