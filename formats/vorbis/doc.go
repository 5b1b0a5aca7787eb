// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files using github.com/jfreymuth/oggvorbis.
//
// # Decoding
//
//	file, _ := os.Open("audio.ogg")
//	defer file.Close()
//
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadAll(source)
//
// Samples are produced natively as float32 and passed through unchanged.
// Stereo streams come out interleaved as [L0, R0, L1, R1, ...]; audio.ReadAll
// splits them into one slice per channel.
//
// # Length
//
// The stream length known from the last Ogg page is reported through
// audio.FrameCounter, so audio.ReadAll allocates once:
//
//	if fc, ok := source.(audio.FrameCounter); ok {
//	    fmt.Println(fc.Frames(), "frames")
//	}
//
// # Limitations
//
// Vorbis is lossy and there is no encoder here. Edits of .ogg input are
// written out as WAV or FLAC.
package vorbis
