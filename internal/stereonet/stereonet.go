// Package stereonet projects pole orientations onto a lower-hemisphere
// equal-angle (Wulff) stereonet and renders them as an interactive HTML
// scatter or a static PNG.
package stereonet

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/core.report/internal/structure"
)

// Project maps a pole (trend, plunge in degrees) to x/y coordinates on the
// unit stereonet disc. North is +y, east is +x. A vertical pole lands at the
// centre, a horizontal pole on the primitive circle.
func Project(trend, plunge float64) (x, y float64) {
	trendRad := trend * math.Pi / 180.0
	plungeRad := plunge * math.Pi / 180.0

	r := math.Tan(math.Pi/4 - plungeRad/2)
	return r * math.Sin(trendRad), r * math.Cos(trendRad)
}

// WriteHTML renders the poles of the given planes as an equal-angle
// stereonet scatter and writes a standalone HTML document to path.
func WriteHTML(path string, planes []structure.Plane, maxPoints int) error {
	if maxPoints <= 0 {
		maxPoints = 8000
	}

	// Downsample by stride to stay within maxPoints.
	stride := 1
	if len(planes) > maxPoints {
		stride = int(math.Ceil(float64(len(planes)) / float64(maxPoints)))
	}

	data := make([]opts.ScatterData, 0, len(planes)/stride+1)
	for i := 0; i < len(planes); i += stride {
		p := planes[i]
		x, y := Project(p.Pole.Trend, p.Pole.Plunge)
		data = append(data, opts.ScatterData{Value: []interface{}{x, y, p.Dip}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Poles to Planes (Equal-Angle Stereonet)", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Poles to planes", Subtitle: fmt.Sprintf("lower hemisphere, equal angle; poles=%d stride=%d", len(data), stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -1.05, Max: 1.05, Name: "E", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -1.05, Max: 1.05, Name: "N", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        90,
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#31688e", "#35b779", "#fde725"}},
		}),
	)
	scatter.AddSeries("poles", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create stereonet file: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("failed to render stereonet: %w", err)
	}
	return nil
}
