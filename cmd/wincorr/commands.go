package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectro/optics/transmission"
	"github.com/cwbudde/algo-spectro/optics/wincorr"
)

// The wavelength is irrelevant for flat tables; any value inside works.
const flatWavelength = 1.0

// SampleCmd corrects one measured reflectance.
type SampleCmd struct {
	Reflectance  float64      `short:"r" required:"" help:"Measured reflectance factor."`
	Uncertainty  float64      `short:"u" default:"0" help:"Measurement uncertainty."`
	Transmission float64      `short:"t" default:"0.95" help:"Window transmission."`
	Windows      int          `short:"w" default:"1" help:"Number of window interfaces."`
	Mode         wincorr.Mode `short:"m" default:"parasitic" help:"Correction mode (parasitic, extended)."`
	Material     string       `default:"custom window" help:"Material name for the info line."`
}

// Run executes the sample command.
func (c *SampleCmd) Run(rc *runContext) error {
	tab, err := transmission.Constant(0, 2*flatWavelength, c.Transmission)
	if err != nil {
		return err
	}

	cfg := wincorr.Config{WindowCount: c.Windows, Mode: c.Mode}
	spec := wincorr.Spectrum{
		Wavelength:  []float64{flatWavelength},
		Reflectance: []float64{c.Reflectance},
		Uncertainty: []float64{c.Uncertainty},
	}

	res, err := wincorr.Correct(spec, tab, cfg, wincorr.WithLogger(rc.logger))
	if err != nil {
		return err
	}

	if rep := wincorr.Summarize(spec, res); rep.NonFinite > 0 {
		rc.logger.Warn("degenerate sample", "no_root", rep.NoRoot, "non_finite", rep.NonFinite)
	}

	_, err = fmt.Fprintf(rc.out, "reflectance: %.6f\nuncertainty: %.6f\n%s\n",
		res.Reflectance[0], res.Uncertainty[0], cfg.Describe(c.Material))
	return err
}

// CurveCmd tabulates both correction modes over a range of measured
// reflectance values.
type CurveCmd struct {
	Transmission float64 `short:"t" default:"0.95" help:"Window transmission."`
	Windows      int     `short:"w" default:"1" help:"Number of window interfaces."`
	From         float64 `default:"0.01" help:"First measured reflectance."`
	To           float64 `default:"0.9" help:"Last measured reflectance."`
	Steps        int     `default:"10" help:"Number of points."`
	Workers      int     `default:"1" help:"Parallel workers."`
	Plot         string  `type:"path" help:"Write a PNG plot to this path."`
}

// curve holds the measured grid and both corrections.
type curve struct {
	measured  []float64
	parasitic []float64
	extended  []float64
}

func (c *CurveCmd) compute(rc *runContext) (curve, error) {
	if c.Steps < 2 {
		return curve{}, fmt.Errorf("steps must be >= 2: %d", c.Steps)
	}

	tab, err := transmission.Constant(0, 2*flatWavelength, c.Transmission)
	if err != nil {
		return curve{}, err
	}

	measured := make([]float64, c.Steps)
	wavelength := make([]float64, c.Steps)
	step := (c.To - c.From) / float64(c.Steps-1)
	for i := range measured {
		measured[i] = c.From + float64(i)*step
		wavelength[i] = flatWavelength
	}

	spec := wincorr.Spectrum{
		Wavelength:  wavelength,
		Reflectance: measured,
		Uncertainty: make([]float64, c.Steps),
	}
	opts := []wincorr.Option{wincorr.WithWorkers(c.Workers), wincorr.WithLogger(rc.logger)}

	par, err := wincorr.Correct(spec, tab, wincorr.Config{WindowCount: c.Windows, Mode: wincorr.ParasiticReflections}, opts...)
	if err != nil {
		return curve{}, err
	}

	ext, err := wincorr.Correct(spec, tab, wincorr.Config{WindowCount: c.Windows, Mode: wincorr.ExtendedCorrection}, opts...)
	if err != nil {
		return curve{}, err
	}

	return curve{measured: measured, parasitic: par.Reflectance, extended: ext.Reflectance}, nil
}

// Run executes the curve command.
func (c *CurveCmd) Run(rc *runContext) error {
	cv, err := c.compute(rc)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Measured\tParasitic\tExtended\tRatio\n")
	fmt.Fprintf(tw, "--------\t---------\t--------\t-----\n")
	for i, m := range cv.measured {
		fmt.Fprintf(tw, "%.4f\t%.6f\t%.6f\t%.4f\n", m, cv.parasitic[i], cv.extended[i], cv.parasitic[i]/m)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if c.Plot == "" {
		return nil
	}

	if err := plotCurve(cv, c.Transmission, c.Windows, c.Plot); err != nil {
		return err
	}
	rc.logger.Info("plot written", "path", c.Plot)

	return nil
}

// TableCmd interpolates an inline transmission table.
type TableCmd struct {
	Table string    `required:"" help:"Comma-separated wavelength:transmission pairs."`
	At    []float64 `arg:"" help:"Wavelengths to look up."`
}

// Run executes the table command.
func (c *TableCmd) Run(rc *runContext) error {
	tab, err := parseTable(c.Table)
	if err != nil {
		return err
	}

	if !tab.Covers(c.At) {
		rc.logger.Warn("wavelengths outside the table are clamped",
			"min", tab.Min(), "max", tab.Max())
	}

	tw := tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Wavelength\tTransmission\tNote\n")
	for _, wl := range c.At {
		note := ""
		if wl < tab.Min() || wl > tab.Max() {
			note = "clamped"
		}
		fmt.Fprintf(tw, "%g\t%.6f\t%s\n", wl, tab.At(wl), note)
	}
	return tw.Flush()
}

var errTableSyntax = errors.New("table entries must look like wavelength:transmission")

func parseTable(s string) (*transmission.Table, error) {
	var wl, tr []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		left, right, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errTableSyntax, field)
		}

		w, err := strconv.ParseFloat(strings.TrimSpace(left), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errTableSyntax, field, err)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(right), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errTableSyntax, field, err)
		}

		wl = append(wl, w)
		tr = append(tr, v)
	}

	return transmission.New(wl, tr)
}
