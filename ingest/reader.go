package ingest

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
)

var errEmptyPath = errors.New("empty path")

// Records holds the result of reading one source. Exactly one of Params or
// Points is populated, according to Format.
type Records struct {
	Format Format
	Params []spectra.Params
	Points spectra.Measured
}

// Len returns the number of parsed records.
func (r Records) Len() int {
	if r.Format == FormatRawPairs {
		return len(r.Points)
	}
	return len(r.Params)
}

// Reader reads record files from a filesystem.
type Reader struct {
	fs afero.Fs
}

// NewReader returns a Reader over fs. A nil fs reads the host filesystem.
func NewReader(fs afero.Fs) *Reader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Reader{fs: fs}
}

// ReadParameterTable reads and parses a parameter table file.
func (r *Reader) ReadParameterTable(path string) ([]spectra.Params, error) {
	data, err := r.load(path)
	if err != nil {
		return nil, err
	}
	params, err := ParseParameterTable(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return params, nil
}

// ReadRawPairs reads and parses a raw pairs file.
func (r *Reader) ReadRawPairs(path string) (spectra.Measured, error) {
	data, err := r.load(path)
	if err != nil {
		return nil, err
	}
	points, err := ParseRawPairs(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}

// Read reads path in the declared format.
func (r *Reader) Read(path string, f Format) (Records, error) {
	switch f {
	case FormatParameterTable:
		params, err := r.ReadParameterTable(path)
		if err != nil {
			return Records{}, err
		}
		return Records{Format: f, Params: params}, nil
	case FormatRawPairs:
		points, err := r.ReadRawPairs(path)
		if err != nil {
			return Records{}, err
		}
		return Records{Format: f, Points: points}, nil
	default:
		return Records{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}

// load reads the whole file; the handle is closed before returning.
func (r *Reader) load(path string) ([]byte, error) {
	if path == "" {
		return nil, sourceError(path, errEmptyPath)
	}
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, sourceError(path, err)
	}
	return data, nil
}

var osReader = NewReader(nil)

// ReadParameterTable reads a parameter table from the host filesystem.
func ReadParameterTable(path string) ([]spectra.Params, error) {
	return osReader.ReadParameterTable(path)
}

// ReadRawPairs reads raw pairs from the host filesystem.
func ReadRawPairs(path string) (spectra.Measured, error) {
	return osReader.ReadRawPairs(path)
}
