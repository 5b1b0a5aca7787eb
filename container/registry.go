// SPDX-License-Identifier: EPL-2.0

package container

import (
	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/formats/aiff"
	"github.com/ik5/audclip/formats/flac"
	"github.com/ik5/audclip/formats/mp3"
	"github.com/ik5/audclip/formats/vorbis"
	"github.com/ik5/audclip/formats/wav"
)

// DefaultRegistry knows every decoder and encoder shipped with audclip.
// Decoders are keyed by file extension, encoders by codec name.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	reg.RegisterEncoder("wav", wav.Encoder{})
	reg.RegisterEncoder("flac", flac.Encoder{})

	return reg
}

// Extension is the file extension conventionally used for codec.
func Extension(codec string) string {
	switch codec {
	case "flac":
		return ".flac"
	default:
		return ".wav"
	}
}
