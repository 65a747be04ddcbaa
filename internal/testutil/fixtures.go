package testutil

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
)

// ParameterTableHeader is the header row written by [ParameterTable].
const ParameterTableHeader = "a,x0,w,bias"

// ParameterTable renders rows as comma-separated parameter-table text with a
// header line.
func ParameterTable(rows ...spectra.Params) string {
	var b strings.Builder
	b.WriteString(ParameterTableHeader)
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(strings.Join([]string{fmtFloat(r.A), fmtFloat(r.X0), fmtFloat(r.W), fmtFloat(r.Bias)}, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// RawPairs renders points as semicolon-separated two-column text without a
// header.
func RawPairs(points ...spectra.Point) string {
	var b strings.Builder
	for _, p := range points {
		b.WriteString(fmtFloat(p.Wavelength))
		b.WriteByte(';')
		b.WriteString(fmtFloat(p.Transmission))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile writes content to path on fs, failing t on error.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// DenyFs wraps an afero.Fs and refuses every Open with a permission error,
// the way an unreadable file on a real filesystem does.
type DenyFs struct {
	afero.Fs
}

func (DenyFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

func (DenyFs) OpenFile(name string, _ int, _ os.FileMode) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

// Axis returns n samples starting at start with the given step.
func Axis(start, step float64, n int) spectra.Axis {
	x := make([]float64, n)
	for i := range x {
		x[i] = start + step*float64(i)
	}
	return spectra.NewAxis(x)
}

// DipSpectrum samples a Lorentzian-shaped notch of the given depth and full
// width at half depth, centered on center, with a flat baseline of 0 and
// deterministic additive noise of the given amplitude.
func DipSpectrum(axis spectra.Axis, center, depth, fwhm, noise float64, seed int64) spectra.Measured {
	rng := rand.New(rand.NewSource(seed))
	hw := fwhm / 2
	out := make(spectra.Measured, axis.Len())
	for i := range out {
		x := axis.At(i)
		d := (x - center) / hw
		v := -depth / (1 + d*d)
		if noise > 0 {
			v += (rng.Float64()*2 - 1) * noise
		}
		out[i] = spectra.Point{Wavelength: x, Transmission: v}
	}
	return out
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
