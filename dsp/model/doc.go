// Package model evaluates closed-form approximations of the transmission dip
// produced by a long-period fiber grating.
//
// Three models are available:
//
//   - [Lorentzian]: asymmetric Lorentzian dip
//   - [Gauss]:      Gaussian dip
//   - [Hybrid]:     selector between the Lorentzian and a blend of both
//
// Every model takes an immutable [spectra.Axis] and a [spectra.Params] row and
// returns a freshly allocated [spectra.Simulated] of the same length. The
// formulas are evaluated literally in IEEE-754 arithmetic: parameter choices
// that divide by zero (a == 3 for the Lorentzian, a == 3.01 for the Gaussian,
// w == 0) yield Inf or NaN samples, which are returned unchanged.
//
// Use [Evaluate] to select a model at run time by [Kind].
package model
