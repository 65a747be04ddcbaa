package spectra

import (
	"fmt"
	"strconv"
)

// Params is one row of model parameters.
type Params struct {
	A    float64 // attenuation intensity
	X0   float64 // resonant wavelength
	W    float64 // full width at half maximum
	Bias float64 // insertion loss
}

// String formats p the way batch reports print parameter rows.
func (p Params) String() string {
	return fmt.Sprintf("a=%s x0=%s w=%s bias=%s",
		formatFloat(p.A), formatFloat(p.X0), formatFloat(p.W), formatFloat(p.Bias))
}

// Point is one measured (wavelength, transmission) sample.
type Point struct {
	Wavelength   float64
	Transmission float64
}

// Measured is a measured spectrum in file order.
type Measured []Point

// Len returns the number of points.
func (m Measured) Len() int { return len(m) }

// Axis returns the wavelengths of m as an [Axis].
func (m Measured) Axis() Axis {
	if len(m) == 0 {
		return Axis{}
	}
	x := make([]float64, len(m))
	for i, p := range m {
		x[i] = p.Wavelength
	}
	return Axis{x: x}
}

// Transmission returns a copy of the transmission column.
func (m Measured) Transmission() []float64 {
	if len(m) == 0 {
		return nil
	}
	out := make([]float64, len(m))
	for i, p := range m {
		out[i] = p.Transmission
	}
	return out
}

// Simulated holds transmission values aligned with the axis they were
// evaluated on.
type Simulated []float64

// Len returns the number of samples.
func (s Simulated) Len() int { return len(s) }

// Points pairs s with axis. The lengths must match.
func (s Simulated) Points(axis Axis) (Measured, error) {
	if len(s) != axis.Len() {
		return nil, fmt.Errorf("simulated/axis length mismatch: %d != %d", len(s), axis.Len())
	}
	out := make(Measured, len(s))
	for i, v := range s {
		out[i] = Point{Wavelength: axis.x[i], Transmission: v}
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
