// Package dip measures the notch of a transmission spectrum.
//
// A long-period grating shows up as a dip in transmission around its resonant
// wavelength. [Analyze] locates the dip minimum, measures its depth against
// the spectrum edges, and finds the full width at half depth with linear
// interpolation between samples. [Smooth] applies a moving average before
// analysis when the measurement is noisy.
//
// Transmission values are taken as given: dB or linear, negative or positive.
// Only their ordering matters.
package dip
