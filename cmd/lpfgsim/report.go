package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-lpfg/batch"
	"github.com/cwbudde/algo-lpfg/dsp/model"
	"github.com/cwbudde/algo-lpfg/dsp/spectra"
	"github.com/cwbudde/algo-lpfg/measure/dip"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func printParams(w io.Writer, rows batch.Rows) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Row\ta\tx0\tw\tbias\n")
	fmt.Fprintf(tw, "---\t-\t--\t-\t----\n")
	for i, p := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, ftoa(p.A), ftoa(p.X0), ftoa(p.W), ftoa(p.Bias))
	}
	return tw.Flush()
}

// printMeasured lists points as "index: wavelength, transmission" with a
// 1-based index.
func printMeasured(w io.Writer, m spectra.Measured) error {
	for i, p := range m {
		if _, err := fmt.Fprintf(w, "%d: %s, %s\n", i+1, ftoa(p.Wavelength), ftoa(p.Transmission)); err != nil {
			return err
		}
	}
	return nil
}

func printDips(w io.Writer, kind model.Kind, axis spectra.Axis, results []batch.Result) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Row\tModel\tResonance [nm]\tMinimum\tDepth\tFWHM [nm]\n")
	fmt.Fprintf(tw, "---\t-----\t--------------\t-------\t-----\t---------\n")
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		m, err := dip.AnalyzeSimulated(axis, r.Spectrum)
		if err != nil {
			fmt.Fprintf(tw, "%d\t%s\tn/a\tn/a\tn/a\tn/a\n", r.Index+1, kind)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\n", r.Index+1, kind, m.Resonance, m.Minimum, m.Depth, m.FWHM)
	}
	return tw.Flush()
}

// dumpCurve writes a simulated curve in the raw-pairs layout, preceded by a
// comment line naming its parameters.
func dumpCurve(w io.Writer, r batch.Result, axis spectra.Axis) error {
	if _, err := fmt.Fprintf(w, "# row %d: %s\n", r.Index+1, r.Params); err != nil {
		return err
	}
	for i, v := range r.Spectrum {
		if _, err := fmt.Fprintf(w, "%s;%s\n", ftoa(axis.At(i)), ftoa(v)); err != nil {
			return err
		}
	}
	return nil
}

func formatMetrics(m dip.Metrics) string {
	return fmt.Sprintf("resonance=%.4f nm minimum=%.4f depth=%.4f fwhm=%.4f nm",
		m.Resonance, m.Minimum, m.Depth, m.FWHM)
}
