// SPDX-License-Identifier: EPL-2.0

// Package container reads and writes audio container files on disk.
//
// Open decodes a whole file into memory and serves frame ranges from it:
//
//	reg := container.DefaultRegistry()
//	f, err := container.Open(reg, "clip.wav")
//	part, err := f.ReadFrames(48000, 96000)
//
// Create returns a Writer that encodes into a temporary file in the
// destination directory. Writes append in call order and are converted to
// the output format on the way. Commit renames the temporary file over the
// destination; Abort deletes it. Because Open has already released the
// source file, the destination may be the source path itself:
//
//	w, err := container.Create(reg, "clip.wav", audio.DefaultOutputFormat())
//	defer w.Abort()
//	err = w.Write(part)
//	err = w.Commit()
//
// Open failures wrap audio.ErrDecode and Writer failures wrap
// audio.ErrEncode, so callers can tell them apart with errors.Is.
//
// At most one Writer should target a given path at a time; edit.Editor
// serializes that for its callers.
package container
