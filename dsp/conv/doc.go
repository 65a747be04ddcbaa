// Package conv provides linear convolution of sampled curves.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) accumulation, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// # Usage
//
//	result, err := conv.Convolve(signal, kernel)           // full result, auto-selected
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution when the shorter operand has at most
// [DirectThreshold] samples and overlap-add otherwise.
package conv
