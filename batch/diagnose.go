package batch

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/cwbudde/algo-lpfg/dsp/model"
	"github.com/cwbudde/algo-lpfg/ingest"
)

// NoSelection is the diagnostic returned when the shell hands over no path.
const NoSelection = "no file was selected"

// Code is a coarse error class used as a log field.
type Code string

const (
	CodeUnknown   Code = "unknown"
	CodeIO        Code = "io"
	CodeMalformed Code = "malformed"
	CodeFormat    Code = "format"
	CodeModel     Code = "model"
)

// Classify maps err onto a [Code] using sentinel errors only.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeUnknown
	case errors.Is(err, ingest.ErrSourceUnavailable):
		return CodeIO
	case errors.Is(err, ingest.ErrMalformedRecord):
		return CodeMalformed
	case errors.Is(err, ingest.ErrUnknownFormat):
		return CodeFormat
	case errors.Is(err, model.ErrUnknownKind):
		return CodeModel
	}
	return CodeUnknown
}

// Diagnose renders err as a one-line message for the user of a shell.
func Diagnose(path string, err error) string {
	if err == nil {
		return ""
	}

	var me *ingest.MalformedRecordError
	switch {
	case errors.As(err, &me):
		if me.Column > 0 {
			return fmt.Sprintf("%s: row %d, column %d is malformed: %v", path, me.Row, me.Column, me.Err)
		}
		return fmt.Sprintf("%s: row %d is malformed: %v", path, me.Row, me.Err)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("%s: file not found", path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Sprintf("%s: permission denied", path)
	case errors.Is(err, ingest.ErrSourceUnavailable):
		return fmt.Sprintf("%s: could not read file: %v", path, err)
	case errors.Is(err, ingest.ErrUnknownFormat):
		return fmt.Sprintf("%s: unsupported file type (want .csv parameters or .txt/.dat spectrum)", path)
	}
	return fmt.Sprintf("%s: %v", path, err)
}
