// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3. The library always emits
// 16-bit stereo, so mono MP3 files decode with both channels identical.
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(source)
//
// When the input implements io.Seeker (an *os.File does), go-mp3 scans the
// stream up front and the source reports its length through
// audio.FrameCounter. There is no MP3 encoder.
package mp3
