package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
)

// Errors returned by rendering functions.
var (
	ErrUnsupportedFormat = errors.New("chart: unsupported format")
	ErrNoData            = errors.New("chart: no finite data to draw")
)

var formats = []string{"svg", "png", "pdf"}

// Formats returns the supported output format names.
func Formats() []string {
	out := make([]string, len(formats))
	copy(out, formats)
	return out
}

// FormatFromPath returns the output format implied by the extension of path.
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range formats {
		if ext == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Style selects how a series is drawn.
type Style int

const (
	StylePoints Style = iota
	StyleLine
)

// Series is one labelled curve.
type Series struct {
	Label  string
	Points spectra.Measured
	Style  Style
}

// MeasuredSeries draws m as points.
func MeasuredSeries(label string, m spectra.Measured) Series {
	return Series{Label: label, Points: m, Style: StylePoints}
}

// SimulatedSeries draws s over axis as a line.
func SimulatedSeries(label string, axis spectra.Axis, s spectra.Simulated) (Series, error) {
	pts, err := s.Points(axis)
	if err != nil {
		return Series{}, err
	}
	return Series{Label: label, Points: pts, Style: StyleLine}, nil
}

// Options controls plot decoration and canvas size.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns a 6x4 inch canvas with wavelength/transmission
// axis labels.
func DefaultOptions() Options {
	return Options{
		XLabel: "Wavelength (nm)",
		YLabel: "Transmission",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// Render draws series onto a canvas of the given format and writes it to w.
//
// Points with a non-finite coordinate are left out. Series left with no
// points are not drawn; if nothing remains, Render returns [ErrNoData].
func Render(w io.Writer, format string, opts Options, series ...Series) error {
	format = strings.ToLower(format)
	if !supported(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, s := range series {
		xys := finiteXYs(s.Points)
		if len(xys) == 0 {
			continue
		}

		thumb, err := addSeries(p, xys, s.Style, i)
		if err != nil {
			return fmt.Errorf("chart: series %q: %w", s.Label, err)
		}
		if s.Label != "" {
			p.Legend.Add(s.Label, thumb)
		}
		drawn++
	}
	if drawn == 0 {
		return ErrNoData
	}

	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// RenderFile renders to path on fs, taking the format from the extension.
func RenderFile(fs afero.Fs, path string, opts Options, series ...Series) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Render(f, format, opts, series...)
}

func addSeries(p *plot.Plot, xys plotter.XYs, style Style, i int) (plot.Thumbnailer, error) {
	switch style {
	case StyleLine:
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Dashes = plotutil.Dashes(i)
		p.Add(l)
		return l, nil
	default:
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Radius = vg.Points(2)
		sc.Shape = draw.CircleGlyph{}
		p.Add(sc)
		return sc, nil
	}
}

func finiteXYs(m spectra.Measured) plotter.XYs {
	xys := make(plotter.XYs, 0, len(m))
	for _, pt := range m {
		if !finite(pt.Wavelength) || !finite(pt.Transmission) {
			continue
		}
		xys = append(xys, plotter.XY{X: pt.Wavelength, Y: pt.Transmission})
	}
	return xys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func supported(format string) bool {
	for _, f := range formats {
		if format == f {
			return true
		}
	}
	return false
}
