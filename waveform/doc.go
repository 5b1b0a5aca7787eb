// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces decoded audio to a short list of peak amplitudes
// for drawing.
//
// Only the first channel is read. The result length follows the bucket
// arithmetic in Generate and can exceed the requested point count by one,
// so renderers should size their output from len(peaks).
package waveform
