// Command lpfgsim ingests long-period fiber grating data files and reports
// their contents.
//
// Usage:
//
//	lpfgsim [flags] file ...
//
// Files ending in .csv are parameter tables (header a,x0,w,bias); files ending
// in .txt or .dat are measured spectra of wavelength;transmission pairs.
//
// Examples:
//
//	lpfgsim params.csv
//	lpfgsim --model lorentzian --start 1540 --stop 1560 params.csv
//	lpfgsim --model hybrid --fcn 0.7 --dump params.csv
//	lpfgsim --smooth 9 --plot dip.svg spectrum.txt
//	lpfgsim --list
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-lpfg/batch"
	"github.com/cwbudde/algo-lpfg/chart"
	"github.com/cwbudde/algo-lpfg/dsp/model"
	"github.com/cwbudde/algo-lpfg/dsp/spectra"
	"github.com/cwbudde/algo-lpfg/ingest"
	"github.com/cwbudde/algo-lpfg/internal/config"
	"github.com/cwbudde/algo-lpfg/internal/logging"
	"github.com/cwbudde/algo-lpfg/measure/dip"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}

type modelEntry struct {
	kind    model.Kind
	summary string
}

var registry = []modelEntry{
	{model.KindLorentzian, "-a / (1 + ((x-x0)/factor)^2) - bias"},
	{model.KindGauss, "-a * exp(-(x-x0)^2 / 2s^2) - bias"},
	{model.KindHybrid, "lorentzian below --fcn 0.5, else sum of half-intensity lorentzian and gauss"},
}

func run(args []string, stdout, stderr io.Writer, fsys afero.Fs) int {
	flags := config.Flags("lpfgsim")
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lpfgsim [flags] file ...\n\n")
		fmt.Fprintf(stderr, "Ingests parameter tables (.csv) and measured spectra (.txt, .dat).\n")
		fmt.Fprintf(stderr, "With --model, every parameter row is evaluated and its dip measured.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  lpfgsim params.csv\n")
		fmt.Fprintf(stderr, "  lpfgsim --model gauss --points 201 params.csv\n")
		fmt.Fprintf(stderr, "  lpfgsim --smooth 9 --plot dip.svg spectrum.txt\n")
		fmt.Fprintf(stderr, "  lpfgsim --list\n")
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if list, _ := flags.GetBool("list"); list {
		if err := printList(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	cfg, err := config.Load(fsys, flags)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger := logging.Setup(stderr, cfg.Log.Level, cfg.Log.Pretty)
	s := &session{
		cfg:    cfg,
		out:    stdout,
		errOut: stderr,
		driver: batch.New(batch.WithFs(fsys), batch.WithLogger(logger)),
	}
	if cfg.Model.Enabled() {
		s.axis, err = spectra.Linspace(cfg.Axis.Start, cfg.Axis.Stop, cfg.Axis.Points)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	files := flags.Args()
	if len(files) == 0 {
		files = []string{""}
	}

	status := 0
	for _, path := range files {
		if !s.process(path) {
			status = 1
		}
	}

	if cfg.Output.Plot != "" && len(s.series) > 0 {
		opts := chart.DefaultOptions()
		opts.Title = "Transmission"
		if err := chart.RenderFile(fsys, cfg.Output.Plot, opts, s.series...); err != nil {
			fmt.Fprintf(stderr, "error: plot: %v\n", err)
			status = 1
		} else {
			logger.Info().Str("path", cfg.Output.Plot).Int("series", len(s.series)).Msg("plot written")
		}
	}
	return status
}

func printList(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Model\tShape\n")
	fmt.Fprintf(tw, "-----\t-----\n")
	for _, e := range registry {
		fmt.Fprintf(tw, "%s\t%s\n", e.kind, e.summary)
	}
	return tw.Flush()
}

// session carries per-invocation state across input files.
type session struct {
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
	driver *batch.Driver
	axis   spectra.Axis
	series []chart.Series
}

func (s *session) process(path string) bool {
	in, diag := s.driver.SelectAndIngest(path)
	if diag != "" {
		fmt.Fprintf(s.errOut, "error: %s\n", diag)
		return false
	}

	fmt.Fprintf(s.out, "== %s (%s, %d records)\n", in.Path, in.Format, in.Len())
	switch in.Format {
	case ingest.FormatParameterTable:
		return s.parameterTable(in)
	default:
		return s.measured(in)
	}
}

func (s *session) parameterTable(in *batch.Ingestion) bool {
	if err := printParams(s.out, in.Rows); err != nil {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return false
	}
	if !s.cfg.Model.Enabled() || len(in.Rows) == 0 {
		return true
	}

	results := in.Rows.Simulate(s.cfg.Model.Kind, s.axis, s.cfg.Model.Selector)
	ok := true
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(s.errOut, "error: row %d: %v\n", r.Index+1, r.Err)
			ok = false
		}
	}
	if err := printDips(s.out, s.cfg.Model.Kind, s.axis, results); err != nil {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return false
	}

	base := filepath.Base(in.Path)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if s.cfg.Output.Dump {
			if err := dumpCurve(s.out, r, s.axis); err != nil {
				fmt.Fprintf(s.errOut, "error: %v\n", err)
				return false
			}
		}
		if s.cfg.Output.Plot != "" {
			label := fmt.Sprintf("%s row %d", base, r.Index+1)
			ser, err := chart.SimulatedSeries(label, s.axis, r.Spectrum)
			if err != nil {
				fmt.Fprintf(s.errOut, "error: %v\n", err)
				return false
			}
			s.series = append(s.series, ser)
		}
	}
	return ok
}

func (s *session) measured(in *batch.Ingestion) bool {
	if err := printMeasured(s.out, in.Measured); err != nil {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return false
	}
	if len(in.Measured) == 0 {
		return true
	}

	m := in.Measured
	if w := s.cfg.Output.Smooth; w > 0 {
		var err error
		m, err = dip.SmoothMeasured(m, w)
		if err != nil {
			fmt.Fprintf(s.errOut, "error: smooth: %v\n", err)
			return false
		}
	}

	metrics, err := dip.AnalyzeMeasured(m)
	if err != nil {
		fmt.Fprintf(s.out, "dip: n/a (%v)\n", err)
	} else {
		fmt.Fprintf(s.out, "dip: %s\n", formatMetrics(metrics))
	}

	if s.cfg.Output.Plot != "" {
		s.series = append(s.series, chart.MeasuredSeries(filepath.Base(in.Path), m))
	}
	return true
}
