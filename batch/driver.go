package batch

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/cwbudde/algo-lpfg/dsp/model"
	"github.com/cwbudde/algo-lpfg/dsp/spectra"
	"github.com/cwbudde/algo-lpfg/ingest"
)

// Option configures a [Driver].
type Option func(*Driver)

// WithFs reads input files from fs instead of the host filesystem.
func WithFs(fs afero.Fs) Option {
	return func(d *Driver) {
		d.fs = fs
	}
}

// WithLogger sets the logger used for per-file and per-record reporting.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Driver) {
		d.log = l
	}
}

// Driver ingests whole files. It holds no mutable state; each call is an
// independent unit of work.
type Driver struct {
	fs     afero.Fs
	log    zerolog.Logger
	reader *ingest.Reader
}

// New returns a Driver. Without options it reads the host filesystem and
// discards log output.
func New(opts ...Option) *Driver {
	d := &Driver{log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	d.reader = ingest.NewReader(d.fs)
	return d
}

// Rows is an ordered sequence of parameter rows from one parameter table.
type Rows []spectra.Params

// Result pairs one parameter row with its simulated spectrum or the error
// that prevented the evaluation.
type Result struct {
	Index    int // 0-based position in the source rows
	Params   spectra.Params
	Spectrum spectra.Simulated
	Err      error
}

// Simulate evaluates every row with the given model over axis. fcn is the
// selector for [model.KindHybrid].
func (r Rows) Simulate(kind model.Kind, axis spectra.Axis, fcn float64) []Result {
	out := make([]Result, len(r))
	for i, p := range r {
		s, err := model.Evaluate(kind, axis, p, model.WithSelector(fcn))
		out[i] = Result{Index: i, Params: p, Spectrum: s, Err: err}
	}
	return out
}

// EvaluateParameterFile parses the parameter table at path and reports each
// row. The rows are returned in file order; they are not run through a model.
func (d *Driver) EvaluateParameterFile(path string) (Rows, error) {
	return d.parameterFile(d.fileLogger(uuid.New(), path, ingest.FormatParameterTable), path)
}

// ReportMeasuredFile parses the raw-pairs spectrum at path and reports each
// point in file order.
func (d *Driver) ReportMeasuredFile(path string) (spectra.Measured, error) {
	return d.measuredFile(d.fileLogger(uuid.New(), path, ingest.FormatRawPairs), path)
}

// Evaluate runs one parameter row through the model identified by kind.
func (d *Driver) Evaluate(kind model.Kind, axis spectra.Axis, p spectra.Params, fcn float64) (spectra.Simulated, error) {
	s, err := model.Evaluate(kind, axis, p, model.WithSelector(fcn))
	if err != nil {
		d.log.Error().Err(err).Stringer("model", kind).Msg("evaluation failed")
		return nil, err
	}
	d.log.Debug().
		Stringer("model", kind).
		Stringer("params", p).
		Int("samples", s.Len()).
		Msg("spectrum evaluated")
	return s, nil
}

func (d *Driver) fileLogger(id uuid.UUID, path string, f ingest.Format) zerolog.Logger {
	return d.log.With().
		Str("ingestion_id", id.String()).
		Str("path", path).
		Stringer("format", f).
		Logger()
}

func (d *Driver) parameterFile(log zerolog.Logger, path string) (Rows, error) {
	params, err := d.reader.ReadParameterTable(path)
	if err != nil {
		log.Error().Err(err).Str("error_code", string(Classify(err))).Msg("parameter table rejected")
		return nil, err
	}

	for i, p := range params {
		log.Debug().
			Int("row", i+1).
			Float64("a", p.A).
			Float64("x0", p.X0).
			Float64("w", p.W).
			Float64("bias", p.Bias).
			Msg("parameter row")
	}
	log.Info().Int("rows", len(params)).Msg("parameter table ingested")
	return Rows(params), nil
}

func (d *Driver) measuredFile(log zerolog.Logger, path string) (spectra.Measured, error) {
	points, err := d.reader.ReadRawPairs(path)
	if err != nil {
		log.Error().Err(err).Str("error_code", string(Classify(err))).Msg("spectrum rejected")
		return nil, err
	}

	for i, p := range points {
		log.Debug().
			Int("index", i+1).
			Float64("wavelength", p.Wavelength).
			Float64("transmission", p.Transmission).
			Msg("spectrum point")
	}
	log.Info().Int("points", len(points)).Msg("spectrum ingested")
	return points, nil
}
