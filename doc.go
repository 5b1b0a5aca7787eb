// SPDX-License-Identifier: EPL-2.0

// Package audclip trims and cuts recorded audio clips and extracts their
// waveforms.
//
// The top-level functions cover the common cases with default settings:
//
//	// keep seconds 2 to 5, in place
//	_, err := audclip.Trim("memo.wav", 2, 5, "memo.wav")
//
//	// drop seconds 2 to 5
//	_, err = audclip.Cut("memo.wav", 2, 5, "memo-cut.wav")
//
//	// 100 peaks for drawing
//	peaks, err := audclip.Waveform("memo.wav", 100)
//
// # Supported Formats
//
// Decoding, chosen by file extension:
//   - WAV (PCM 16, 24 and 32-bit) via formats/wav
//   - FLAC via formats/flac
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16 and 24-bit) via formats/aiff
//
// Encoding: WAV and FLAC. Edited clips are written at 48 kHz, two
// channels, 24-bit unless an edit.Editor is configured otherwise.
//
// # Packages
//
// The work is split across subpackages that can be used directly:
//   - audio: buffers, time ranges, formats, decoder registry, resampling
//   - container: opening files into buffers and writing them atomically
//   - edit: trim and cut on buffers and on files
//   - waveform: peak extraction and JSON summaries
//
// # Errors
//
// Failures are reported with sentinel errors from the audio package.
// Use errors.Is with audio.ErrDecode, audio.ErrEncode and
// audio.ErrRangeOutOfBounds to tell them apart.
package audclip
