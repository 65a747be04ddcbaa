package batch

import (
	"strings"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
	"github.com/cwbudde/algo-lpfg/ingest"
)

// Ingestion is the outcome of one successful [Driver.SelectAndIngest] call.
// Rows is set for parameter tables, Measured for raw-pairs spectra.
type Ingestion struct {
	ID       uuid.UUID
	Path     string
	Format   ingest.Format
	Rows     Rows
	Measured spectra.Measured
}

// Len returns the number of ingested records.
func (in *Ingestion) Len() int {
	if in.Format == ingest.FormatRawPairs {
		return len(in.Measured)
	}
	return len(in.Rows)
}

// SelectAndIngest ingests the file named by pathHint, choosing the format from
// its extension. On failure it returns a nil Ingestion and a diagnostic meant
// for display; on success the diagnostic is empty.
func (d *Driver) SelectAndIngest(pathHint string) (*Ingestion, string) {
	path := strings.TrimSpace(pathHint)
	if path == "" {
		d.log.Warn().Msg(NoSelection)
		return nil, NoSelection
	}

	f, err := ingest.DetectFormat(path)
	if err != nil {
		d.log.Error().Err(err).Str("path", path).Str("error_code", string(Classify(err))).Msg("unsupported file")
		return nil, Diagnose(path, err)
	}

	in := &Ingestion{ID: uuid.New(), Path: path, Format: f}
	log := d.fileLogger(in.ID, path, f)

	switch f {
	case ingest.FormatParameterTable:
		in.Rows, err = d.parameterFile(log, path)
	default:
		in.Measured, err = d.measuredFile(log, path)
	}
	if err != nil {
		return nil, Diagnose(path, err)
	}
	return in, ""
}
