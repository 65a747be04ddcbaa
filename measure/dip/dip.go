package dip

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
)

// Errors returned by analysis functions.
var (
	ErrEmpty          = errors.New("dip: empty spectrum")
	ErrLengthMismatch = errors.New("dip: axis/transmission length mismatch")
	ErrNotIncreasing  = errors.New("dip: axis must be strictly increasing")
	ErrNoFiniteSample = errors.New("dip: no finite transmission sample")
)

// Metrics describes the deepest notch of a spectrum.
type Metrics struct {
	MinIndex  int     // index of the lowest finite sample
	Resonance float64 // wavelength at MinIndex
	Minimum   float64 // transmission at MinIndex
	Baseline  float64 // larger of the two outermost finite samples
	Depth     float64 // Baseline - Minimum
	FWHM      float64 // Upper - Lower
	Lower     float64 // half-depth crossing below Resonance
	Upper     float64 // half-depth crossing above Resonance
}

// Analyze measures the dip of transmission sampled on axis.
//
// Non-finite samples are skipped when searching the minimum and the baseline
// and never count as a half-depth crossing. When the curve does not recover
// to half depth on a side, the crossing is pinned to that end of the axis.
func Analyze(axis spectra.Axis, transmission []float64) (Metrics, error) {
	n := axis.Len()
	if n == 0 || len(transmission) == 0 {
		return Metrics{}, ErrEmpty
	}
	if n != len(transmission) {
		return Metrics{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, n, len(transmission))
	}
	if !axis.Increasing() {
		return Metrics{}, ErrNotIncreasing
	}

	minIdx := -1
	for i, v := range transmission {
		if !finite(v) {
			continue
		}
		if minIdx < 0 || v < transmission[minIdx] {
			minIdx = i
		}
	}
	if minIdx < 0 {
		return Metrics{}, ErrNoFiniteSample
	}

	m := Metrics{
		MinIndex:  minIdx,
		Resonance: axis.At(minIdx),
		Minimum:   transmission[minIdx],
		Baseline:  baseline(transmission),
	}
	m.Depth = m.Baseline - m.Minimum
	if m.Depth == 0 {
		m.Lower, m.Upper = m.Resonance, m.Resonance
		return m, nil
	}

	threshold := m.Minimum + m.Depth/2

	m.Lower = axis.At(0)
	for i := minIdx; i >= 1; i-- {
		if transmission[i-1] >= threshold && transmission[i] < threshold {
			m.Lower = crossing(axis.At(i-1), axis.At(i), transmission[i-1], transmission[i], threshold)
			break
		}
	}

	m.Upper = axis.At(n - 1)
	for i := minIdx; i < n-1; i++ {
		if transmission[i+1] >= threshold && transmission[i] < threshold {
			m.Upper = crossing(axis.At(i), axis.At(i+1), transmission[i], transmission[i+1], threshold)
			break
		}
	}

	m.FWHM = m.Upper - m.Lower
	return m, nil
}

// AnalyzeMeasured is [Analyze] over the columns of m.
func AnalyzeMeasured(m spectra.Measured) (Metrics, error) {
	return Analyze(m.Axis(), m.Transmission())
}

// AnalyzeSimulated is [Analyze] over s evaluated on axis.
func AnalyzeSimulated(axis spectra.Axis, s spectra.Simulated) (Metrics, error) {
	return Analyze(axis, s)
}

func baseline(t []float64) float64 {
	first, last := math.NaN(), math.NaN()
	for _, v := range t {
		if finite(v) {
			first = v
			break
		}
	}
	for i := len(t) - 1; i >= 0; i-- {
		if finite(t[i]) {
			last = t[i]
			break
		}
	}
	return math.Max(first, last)
}

// crossing interpolates the wavelength where the segment (x0,y0)-(x1,y1)
// passes threshold.
func crossing(x0, x1, y0, y1, threshold float64) float64 {
	denom := y1 - y0
	if denom == 0 {
		return (x0 + x1) / 2
	}
	t := (threshold - y0) / denom
	return x0 + t*(x1-x0)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
