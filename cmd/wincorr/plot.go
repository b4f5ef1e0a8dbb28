package main

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	measuredColor  = color.RGBA{R: 54, G: 135, B: 211, A: 255}
	parasiticColor = color.RGBA{R: 234, G: 129, B: 0, A: 255}
	extendedColor  = color.RGBA{R: 60, G: 160, B: 80, A: 255}
)

// finiteXYs pairs x and y, dropping points plotter would reject.
func finiteXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	return pts
}

func plotCurve(cv curve, tr float64, windows int, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Window correction (T = %.3f, %d window(s))", tr, windows)
	p.X.Label.Text = "Measured reflectance"
	p.Y.Label.Text = "Corrected reflectance"
	p.Add(plotter.NewGrid())

	series := []struct {
		name   string
		pts    plotter.XYs
		color  color.Color
		dashed bool
	}{
		{"measured", finiteXYs(cv.measured, cv.measured), measuredColor, true},
		{"parasitic reflections", finiteXYs(cv.measured, cv.parasitic), parasiticColor, false},
		{"extended correction", finiteXYs(cv.measured, cv.extended), extendedColor, false},
	}

	for _, s := range series {
		if len(s.pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(s.pts)
		if err != nil {
			return fmt.Errorf("plot %s: %w", s.name, err)
		}

		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = s.color
		if s.dashed {
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}

		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	return nil
}
