// Package ingest reads delimited spectrum records into typed values.
//
// Two formats are supported:
//
//   - [FormatParameterTable]: comma separated, one header row, columns
//     a, x0, w, bias mapped onto [spectra.Params].
//   - [FormatRawPairs]: semicolon separated, no header, two columns
//     wavelength; transmission mapped onto [spectra.Point].
//
// Files are read whole through an [afero.Fs]. Parsing is fail-fast: the first
// malformed row aborts the parse with a [*MalformedRecordError] and no partial
// result. Failures to open or read the source wrap [ErrSourceUnavailable] and
// are never reported as malformed records.
package ingest
