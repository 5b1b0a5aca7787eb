// SPDX-License-Identifier: EPL-2.0

// Package audio provides the audio primitives shared by the rest of audclip.
//
// This package contains:
//   - Source interface for streaming decoder output
//   - Buffer, decoded audio held in memory one slice per channel
//   - TimeRange for selecting a span of seconds
//   - Format, the description of an encoded output
//   - Registry of decoders by extension and encoders by codec
//   - Resample and Remix for sample rate and channel conversion
//
// # Source Interface
//
// Decoders hand out a Source that yields interleaved samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadAll drains a Source into a Buffer. Sources that know their length
// also implement FrameCounter so the Buffer is allocated once.
//
// # Buffers and Ranges
//
// A TimeRange maps to frames with round(seconds * sampleRate):
//
//	r := audio.TimeRange{Start: 2, End: 5}
//	if err := r.Validate(buf.Duration()); err != nil {
//	    return err // wraps ErrRangeOutOfBounds
//	}
//	start, end := r.Frames(buf.SampleRate)
//	part, err := buf.Slice(start, end-start)
//
// Slice and Concat always copy, so edits never alias the decoded source.
//
// # Conversion
//
// Resample uses cubic (Catmull-Rom) interpolation and low-pass filters
// before downsampling. Remix averages channels down to mono and duplicates
// mono up to any channel count.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]. Encoders clamp on the way
// out, so intermediate values may briefly exceed it.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. The sentinel errors
// in this package classify failures for every other package: ErrDecode for
// unreadable input, ErrEncode for unwritable output and ErrRangeOutOfBounds
// for ranges outside the source.
package audio
