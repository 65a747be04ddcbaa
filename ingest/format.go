package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the layout of a record source.
type Format int

const (
	FormatParameterTable Format = iota
	FormatRawPairs
)

var formatNames = [...]string{
	FormatParameterTable: "parameter-table",
	FormatRawPairs:       "raw-pairs",
}

// String returns the canonical name of f.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "parameter-table", "parameters", "params", "csv":
		return FormatParameterTable, nil
	case "raw-pairs", "pairs", "raw", "txt":
		return FormatRawPairs, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DetectFormat picks a format from the file extension of path: ".csv" holds a
// parameter table, ".txt" and ".dat" hold raw pairs.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatParameterTable, nil
	case ".txt", ".dat":
		return FormatRawPairs, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

func (f Format) delimiter() rune {
	if f == FormatRawPairs {
		return ';'
	}
	return ','
}

func (f Format) hasHeader() bool {
	return f == FormatParameterTable
}
