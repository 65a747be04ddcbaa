package dip

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lpfg/dsp/conv"
	"github.com/cwbudde/algo-lpfg/dsp/spectra"
)

// Smooth returns the moving average of values over a window of width
// samples, centred on each sample.
//
// Windows are shortened at the edges and non-finite samples are left out of
// every average, so each output is the mean of the finite inputs it covers.
// An output whose window holds no finite input is NaN. Width 1 returns a copy.
func Smooth(values []float64, width int) ([]float64, error) {
	if width < 1 {
		return nil, fmt.Errorf("dip: smoothing width must be > 0: %d", width)
	}
	if len(values) == 0 {
		return nil, ErrEmpty
	}

	data := make([]float64, len(values))
	mask := make([]float64, len(values))
	for i, v := range values {
		if finite(v) {
			data[i] = v
			mask[i] = 1
		}
	}

	kernel := make([]float64, width)
	for i := range kernel {
		kernel[i] = 1
	}

	sums, err := conv.ConvolveMode(data, kernel, conv.ModeSame)
	if err != nil {
		return nil, err
	}
	counts, err := conv.ConvolveMode(mask, kernel, conv.ModeSame)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	for i := range out {
		// FFT round-off leaves counts near, not at, integers.
		if counts[i] < 0.5 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sums[i] / counts[i]
	}
	return out, nil
}

// SmoothMeasured smooths the transmission column of m and keeps its
// wavelengths.
func SmoothMeasured(m spectra.Measured, width int) (spectra.Measured, error) {
	t, err := Smooth(m.Transmission(), width)
	if err != nil {
		return nil, err
	}
	out := make(spectra.Measured, len(m))
	for i, p := range m {
		out[i] = spectra.Point{Wavelength: p.Wavelength, Transmission: t[i]}
	}
	return out, nil
}
