// core-report converts oriented drill-core alpha/beta measurements into
// global plane orientations, either one at a time or for a whole borehole
// against its orientation survey.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/banshee-data/core.report/internal/version"
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	var err error
	switch command {
	case "orient":
		err = handleOrient(args)
	case "borehole":
		err = handleBorehole(args)
	case "version":
		fmt.Printf("core-report version %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "core-report %s: %v\n", command, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`core-report - oriented drill-core measurement processor

Usage: core-report <command> [options]

Commands:
  orient     Orient a single alpha/beta measurement against a hole attitude
  borehole   Orient a measurement table against an orientation survey
  version    Show core-report version
  help       Show this help message

orient options:
  --bearing <deg>       Hole bearing, clockwise from north [0, 360]
  --inclination <deg>   Hole inclination from horizontal, positive down [0, 90]
  --alpha <deg>         Alpha core angle [0, 90]
  --beta <deg>          Beta core angle [0, 360]
  --bottom              Beta reference line on the bottom of the core

borehole options:
  --survey <csv>        Survey station table (depth,bearing,inclination)
  --measurements <csv>  Raw measurement table (depth,alpha,beta)
  --output <csv>        Oriented-plane table destination (default: stdout)
  --bottom              Beta reference line on the bottom of the core
  --config <json>       Processing config file (convention, precision, plots)
  --summary             Print orientation summary statistics
  --stereonet <html>    Write an interactive equal-angle stereonet
  --png <png>           Write a static stereonet image

Survey tables must be depth-ascending and start at depth 0.0. Inclination
columns follow the drilling convention: negative for downward holes.`)
}
