package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// ParseParameterTable parses comma-separated parameter rows from src. The
// first non-blank row is a header and is skipped. Each following row maps its
// first four fields onto a, x0, w and bias; further fields are ignored.
//
// A header-only or empty source yields an empty, non-nil slice.
func ParseParameterTable(src io.Reader) ([]spectra.Params, error) {
	out := []spectra.Params{}
	err := scan(src, FormatParameterTable, func(row int, rec []string) error {
		if len(rec) < 4 {
			return &MalformedRecordError{
				Format: FormatParameterTable,
				Row:    row,
				Column: len(rec) + 1,
				Err:    fmt.Errorf("%w: got %d, want 4", errTooFewFields, len(rec)),
			}
		}

		var v [4]float64
		for i := range v {
			f, err := parseFloatField(rec[i])
			if err != nil {
				return &MalformedRecordError{Format: FormatParameterTable, Row: row, Column: i + 1, Field: rec[i], Err: err}
			}
			v[i] = f
		}
		out = append(out, spectra.Params{A: v[0], X0: v[1], W: v[2], Bias: v[3]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseRawPairs parses semicolon-separated wavelength/transmission pairs from
// src. There is no header; every non-blank line must hold exactly two fields.
func ParseRawPairs(src io.Reader) (spectra.Measured, error) {
	out := spectra.Measured{}
	err := scan(src, FormatRawPairs, func(row int, rec []string) error {
		if len(rec) != 2 {
			return &MalformedRecordError{
				Format: FormatRawPairs,
				Row:    row,
				Err:    fmt.Errorf("%w: got %d, want 2", errFieldCount, len(rec)),
			}
		}

		var v [2]float64
		for i := range v {
			f, err := parseFloatField(rec[i])
			if err != nil {
				return &MalformedRecordError{Format: FormatRawPairs, Row: row, Column: i + 1, Field: rec[i], Err: err}
			}
			v[i] = f
		}
		out = append(out, spectra.Point{Wavelength: v[0], Transmission: v[1]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// scan reads src whole and hands every non-blank record after the optional
// header to fn together with its 1-based line number.
func scan(src io.Reader, f Format, fn func(row int, rec []string) error) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return sourceError("", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = f.delimiter()
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	skipHeader := f.hasHeader()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return &MalformedRecordError{Format: f, Row: pe.StartLine, Err: pe.Err}
			}
			return sourceError("", err)
		}
		if blank(rec) {
			continue
		}
		if skipHeader {
			skipHeader = false
			continue
		}

		row, _ := cr.FieldPos(0)
		if err := fn(row, rec); err != nil {
			return err
		}
	}
}

func blank(rec []string) bool {
	return len(rec) == 1 && strings.TrimSpace(rec[0]) == ""
}

// parseFloatField accepts decimal literals with optional sign and exponent.
// Out-of-range literals saturate the way IEEE-754 parsing does (±Inf or 0).
// Hexadecimal mantissas and digit-separating underscores are rejected.
func parseFloatField(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !decimalLiteral(s) {
		return 0, errNotFloat
	}
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, nil
	}
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return v, nil
	}
	return 0, errNotFloat
}

func decimalLiteral(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	body := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(body, "0x") && !strings.HasPrefix(body, "0X")
}
