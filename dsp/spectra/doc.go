// Package spectra defines the value types shared by the ingestion and model
// packages: wavelength axes, model parameter rows, measured spectrum points,
// and simulated transmission curves.
//
// An [Axis] is immutable once constructed and may be shared by any number of
// model evaluations. A [Simulated] spectrum is aligned index-for-index with the
// axis it was evaluated on.
package spectra
