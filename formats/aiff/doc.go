// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit and 24-bit PCM AIFF files via
// github.com/go-audio/aiff.
//
// # Decoding
//
//	file, _ := os.Open("audio.aiff")
//	defer file.Close()
//
//	source, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not a FORM/AIFF container
//	}
//	buf, err := audio.ReadAll(source)
//
// Big-endian integer samples are normalized to float32 in [-1.0, 1.0).
//
// # Input
//
// go-audio needs an io.ReadSeeker; plain readers are buffered in memory
// first. The frame count from the COMM chunk is exposed through
// audio.FrameCounter.
//
// # Limitations
//
// Only 16-bit and 24-bit samples are accepted (ErrUnsupportedBitDepth
// otherwise). There is no encoder.
package aiff
