// SPDX-License-Identifier: EPL-2.0

// Package flac decodes and encodes FLAC files using github.com/mewkiz/flac.
//
// Decoding supports every channel layout and bit depth the library parses.
// Encoding writes verbatim (uncompressed) subframes for mono or stereo at
// 16 or 24 bits; it is lossless but not size-optimized.
//
// The encoder closes the destination if it implements io.Closer, so
// callers that manage the file themselves should hide Close, as
// container.Writer does.
package flac
