// SPDX-License-Identifier: EPL-2.0

package audclip

import (
	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/container"
	"github.com/ik5/audclip/edit"
	"github.com/ik5/audclip/waveform"
)

var defaultEditor = edit.NewEditor()

// Trim keeps the audio of src between start and end seconds and writes it
// to dst in the default output format (48 kHz stereo, 24-bit WAV).
//
// dst may be the same path as src. The new container is written to a
// temporary file in dst's directory and renamed over dst once complete, so
// a failed edit leaves the old file in place.
//
// Errors wrap one of:
//   - audio.ErrDecode: src is missing, corrupt or in an unknown format
//   - audio.ErrRangeOutOfBounds: the range is not within [0, duration]
//   - audio.ErrEncode: dst could not be written
//
// Example:
//
//	res, err := audclip.Trim("memo.wav", 2.0, 5.0, "memo.wav")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("wrote %.2fs\n", res.Duration())
func Trim(src string, start, end float64, dst string) (edit.Result, error) {
	return defaultEditor.Trim(src, audio.TimeRange{Start: start, End: end}, dst)
}

// Cut removes the audio of src between start and end seconds and writes
// the rest to dst. Everything said about dst and errors for Trim applies.
func Cut(src string, start, end float64, dst string) (edit.Result, error) {
	return defaultEditor.Cut(src, audio.TimeRange{Start: start, End: end}, dst)
}

// Waveform decodes path and returns peak amplitudes of its first channel,
// about points of them. See waveform.Generate for the exact length.
func Waveform(path string, points int) ([]float32, error) {
	return waveform.FromFile(container.DefaultRegistry(), path, points)
}
