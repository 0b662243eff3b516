// Package summary computes aggregate fabric statistics over a set of
// oriented planes.
package summary

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/core.report/internal/structure"
)

// Stats summarises the orientation distribution of a measurement set.
// Azimuthal quantities use circular means; dip and plunge are plain
// arithmetic means since they live on [0, 90].
type Stats struct {
	Count        int
	MeanDip      float64
	StdDevDip    float64
	MeanPlunge   float64
	StdDevPlunge float64
	// MeanStrike and MeanTrend are circular means in [0, 360).
	MeanStrike float64
	MeanTrend  float64
	// Concentration is the mean resultant length of the pole trends in
	// [0, 1]: 1 for identical azimuths, near 0 for a uniform spread.
	Concentration float64
}

// Compute returns the summary statistics for the given planes. An empty
// input yields a zero-count Stats with no other fields populated.
func Compute(planes []structure.Plane) Stats {
	if len(planes) == 0 {
		return Stats{}
	}

	dips := make([]float64, len(planes))
	plunges := make([]float64, len(planes))
	for i, p := range planes {
		dips[i] = p.Dip
		plunges[i] = p.Pole.Plunge
	}

	s := Stats{
		Count:      len(planes),
		MeanDip:    stat.Mean(dips, nil),
		MeanPlunge: stat.Mean(plunges, nil),
	}
	if len(planes) > 1 {
		s.StdDevDip = stat.StdDev(dips, nil)
		s.StdDevPlunge = stat.StdDev(plunges, nil)
	}

	s.MeanStrike, _ = circularMean(planes, func(p structure.Plane) float64 { return p.Strike })
	s.MeanTrend, s.Concentration = circularMean(planes, func(p structure.Plane) float64 { return p.Pole.Trend })
	return s
}

// circularMean averages an azimuthal quantity on the unit circle and returns
// the mean direction in [0, 360) together with the mean resultant length.
func circularMean(planes []structure.Plane, pick func(structure.Plane) float64) (mean, resultant float64) {
	var sumSin, sumCos float64
	for _, p := range planes {
		rad := pick(p) * math.Pi / 180.0
		sumSin += math.Sin(rad)
		sumCos += math.Cos(rad)
	}
	n := float64(len(planes))
	resultant = math.Hypot(sumSin, sumCos) / n

	mean = math.Atan2(sumSin, sumCos) * 180.0 / math.Pi
	if mean < 0 {
		mean += 360.0
	}
	return mean, resultant
}

// String renders the stats as a small fixed-width report for the CLI.
func (s Stats) String() string {
	if s.Count == 0 {
		return "no oriented measurements"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "measurements:   %d\n", s.Count)
	fmt.Fprintf(&b, "mean strike:    %7.2f\n", s.MeanStrike)
	fmt.Fprintf(&b, "mean dip:       %7.2f (stddev %.2f)\n", s.MeanDip, s.StdDevDip)
	fmt.Fprintf(&b, "mean trend:     %7.2f\n", s.MeanTrend)
	fmt.Fprintf(&b, "mean plunge:    %7.2f (stddev %.2f)\n", s.MeanPlunge, s.StdDevPlunge)
	fmt.Fprintf(&b, "concentration:  %7.2f", s.Concentration)
	return b.String()
}
