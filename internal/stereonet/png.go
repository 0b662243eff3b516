package stereonet

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/core.report/internal/structure"
)

// WritePNG renders the poles of the given planes on an equal-angle stereonet
// and saves it as a PNG at path.
func WritePNG(path string, planes []structure.Plane) error {
	p := plot.New()
	p.Title.Text = "Poles to planes (equal angle, lower hemisphere)"
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1
	p.X.Label.Text = "E"
	p.Y.Label.Text = "N"

	// Primitive circle.
	circle := make(plotter.XYs, 0, 361)
	for deg := 0; deg <= 360; deg++ {
		rad := float64(deg) * math.Pi / 180.0
		circle = append(circle, plotter.XY{X: math.Sin(rad), Y: math.Cos(rad)})
	}
	circleLine, err := plotter.NewLine(circle)
	if err != nil {
		return fmt.Errorf("failed to build primitive circle: %w", err)
	}
	circleLine.Width = vg.Points(1)
	p.Add(circleLine)

	poles := make(plotter.XYs, 0, len(planes))
	for _, plane := range planes {
		x, y := Project(plane.Pole.Trend, plane.Pole.Plunge)
		poles = append(poles, plotter.XY{X: x, Y: y})
	}
	scatter, err := plotter.NewScatter(poles)
	if err != nil {
		return fmt.Errorf("failed to build pole scatter: %w", err)
	}
	scatter.Radius = vg.Points(2)
	p.Add(scatter)

	if err := p.Save(7*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save stereonet PNG: %w", err)
	}
	return nil
}
