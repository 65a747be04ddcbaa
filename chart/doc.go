// Package chart renders transmission spectra to image files.
//
// Measured spectra are drawn as scatter points and simulated spectra as
// lines, one colour per series, on a wavelength/transmission plot. Output
// formats are those supported by gonum plot canvases: svg, png and pdf.
package chart
