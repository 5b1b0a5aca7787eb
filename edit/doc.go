// SPDX-License-Identifier: EPL-2.0

// Package edit trims and cuts time ranges out of decoded audio.
//
// Trim keeps the frames inside a range. Cut removes them and keeps the
// frames on either side. Both convert seconds to frames with
// round(seconds * sampleRate) and reject ranges outside the source with
// audio.ErrRangeOutOfBounds.
//
// The pure functions operate on an audio.Buffer. Editor applies the same
// edits to files:
//
//	ed := edit.NewEditor()
//	res, err := ed.Cut("memo.wav", audio.TimeRange{Start: 2, End: 5}, "memo.wav")
//
// Editor writes through container.Writer, so a failed edit leaves the
// previous contents of the destination in place.
package edit
