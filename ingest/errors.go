package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable wraps every failure to open or read an input.
	ErrSourceUnavailable = errors.New("ingest: source unavailable")
	// ErrMalformedRecord matches every [*MalformedRecordError].
	ErrMalformedRecord = errors.New("ingest: malformed record")
	// ErrUnknownFormat is returned when no [Format] matches a name or path.
	ErrUnknownFormat = errors.New("ingest: unknown format")

	errTooFewFields = errors.New("too few fields")
	errFieldCount   = errors.New("wrong number of fields")
	errNotFloat     = errors.New("not a floating-point number")
)

// MalformedRecordError reports a row that does not map onto the declared
// format.
type MalformedRecordError struct {
	Format Format
	Row    int    // 1-based line of the record in the source
	Column int    // 1-based field index, 0 when the row as a whole is at fault
	Field  string // raw text of the offending field, if any
	Err    error
}

func (e *MalformedRecordError) Error() string {
	switch {
	case e.Column > 0 && e.Field != "":
		return fmt.Sprintf("ingest: %s row %d column %d: %q: %v", e.Format, e.Row, e.Column, e.Field, e.Err)
	case e.Column > 0:
		return fmt.Sprintf("ingest: %s row %d column %d: %v", e.Format, e.Row, e.Column, e.Err)
	default:
		return fmt.Sprintf("ingest: %s row %d: %v", e.Format, e.Row, e.Err)
	}
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrMalformedRecord].
func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }

func sourceError(path string, err error) error {
	if path == "" {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
}
