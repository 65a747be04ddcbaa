package spectra

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// Axis is an ordered sequence of wavelength samples.
//
// The zero value is an empty axis. Axis values are safe for concurrent reads.
type Axis struct {
	x []float64
}

// NewAxis returns an axis over a copy of values.
func NewAxis(values []float64) Axis {
	if len(values) == 0 {
		return Axis{}
	}
	x := make([]float64, len(values))
	copy(x, values)
	return Axis{x: x}
}

// Linspace returns n evenly spaced samples from start to stop inclusive.
func Linspace(start, stop float64, n int) (Axis, error) {
	if n < 2 {
		return Axis{}, fmt.Errorf("linspace requires at least 2 points: %d", n)
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return Axis{}, fmt.Errorf("linspace bounds must be finite: [%g, %g]", start, stop)
	}
	return Axis{x: floats.Span(make([]float64, n), start, stop)}, nil
}

// Len returns the number of samples.
func (a Axis) Len() int { return len(a.x) }

// At returns the wavelength at index i.
func (a Axis) At(i int) float64 { return a.x[i] }

// Values returns a copy of the samples.
func (a Axis) Values() []float64 {
	if len(a.x) == 0 {
		return nil
	}
	out := make([]float64, len(a.x))
	copy(out, a.x)
	return out
}

// Min returns the smallest sample, or NaN for an empty axis.
func (a Axis) Min() float64 {
	if len(a.x) == 0 {
		return math.NaN()
	}
	return floats.Min(a.x)
}

// Max returns the largest sample, or NaN for an empty axis.
func (a Axis) Max() float64 {
	if len(a.x) == 0 {
		return math.NaN()
	}
	return floats.Max(a.x)
}

// Increasing reports whether the samples are strictly increasing.
func (a Axis) Increasing() bool {
	for i := 1; i < len(a.x); i++ {
		if !(a.x[i] > a.x[i-1]) {
			return false
		}
	}
	return true
}
