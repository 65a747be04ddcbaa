package model

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
)

// HybridThreshold is the selector value at which [Hybrid] switches from the
// plain Lorentzian to the Lorentzian/Gaussian blend. The comparison is strict:
// fcn == HybridThreshold selects the blend.
const HybridThreshold = 0.5

// Lorentzian evaluates the asymmetric Lorentzian dip
//
//	factor = w / (2*sqrt(|a/3 - 1|))
//	T(x)   = -a * (1 + ((x - x0)/factor)^2)^-1 - bias
//
// at every sample of axis.
func Lorentzian(axis spectra.Axis, p spectra.Params) spectra.Simulated {
	out := make(spectra.Simulated, axis.Len())
	factor := lorentzianFactor(p.A, p.W)
	for i := range out {
		out[i] = lorentzian(axis.At(i), p.A, p.X0, factor, p.Bias)
	}
	return out
}

// Gauss evaluates the Gaussian dip
//
//	s    = w / (2*sqrt(4*|ln(a/3.01)|))
//	T(x) = -a * exp(-(x - x0)^2 / (2*s^2)) - bias
//
// at every sample of axis.
func Gauss(axis spectra.Axis, p spectra.Params) spectra.Simulated {
	out := make(spectra.Simulated, axis.Len())
	s := gaussSigma(p.A, p.W)
	for i := range out {
		out[i] = gauss(axis.At(i), p.A, p.X0, s, p.Bias)
	}
	return out
}

// Hybrid evaluates the Lorentzian when fcn < [HybridThreshold]. Otherwise it
// returns the sum of the Lorentzian and the Gaussian, each evaluated with half
// the attenuation and half the width, plus bias.
//
// Each half subtracts bias on its own and the trailing +bias term is applied
// once more on top of their sum. A NaN selector takes the blend.
func Hybrid(axis spectra.Axis, p spectra.Params, fcn float64) spectra.Simulated {
	if fcn < HybridThreshold {
		return Lorentzian(axis, p)
	}

	half := spectra.Params{A: p.A / 2, X0: p.X0, W: p.W / 2, Bias: p.Bias}
	ts := Lorentzian(axis, half)
	mg := Gauss(axis, half)

	out := make(spectra.Simulated, len(ts))
	vecmath.AddBlock(out, ts, mg)
	for i := range out {
		out[i] += p.Bias
	}
	return out
}

func lorentzianFactor(a, w float64) float64 {
	return w / (2 * math.Sqrt(math.Abs(a/3-1)))
}

func lorentzian(x, a, x0, factor, bias float64) float64 {
	u := (x - x0) / factor
	return -a*math.Pow(1+u*u, -1) - bias
}

func gaussSigma(a, w float64) float64 {
	return w / (2 * math.Sqrt(4*math.Abs(math.Log(a/3.01))))
}

func gauss(x, a, x0, s, bias float64) float64 {
	d := x - x0
	arg := -(d * d / (2 * (s * s)))
	return -a*math.Exp(arg) - bias
}
