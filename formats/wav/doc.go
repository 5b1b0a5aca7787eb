// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions use the github.com/go-audio/wav library. Integer PCM at
// 16, 24 and 32 bits is supported, with any channel count and sample rate.
// Both the plain PCM format tag (1) and WAVE_FORMAT_EXTENSIBLE (0xFFFE) are
// read.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(source)
//
// The decoder returns an audio.Source producing float32 samples in the
// range [-1.0, 1.0]. It also implements audio.FrameCounter, reporting the
// frame count declared by the data chunk.
//
// # Writing WAV Files
//
// Encoder implements audio.Encoder. The destination must be an
// io.WriteSeeker because the RIFF sizes are patched on Close:
//
//	fw, err := wav.Encoder{}.NewWriter(file, audio.DefaultOutputFormat())
//	err = fw.WriteFrames(buf)
//	err = fw.Close()
//
// Buffers passed to WriteFrames must already match the writer's sample rate
// and channel count; container.Writer takes care of the conversion.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedEncoding: the format tag is not integer PCM
//   - ErrUnsupportedBitDepth: the bit depth is not 16, 24 or 32
//   - ErrSampleRateMismatch: a buffer does not match the writer
package wav
