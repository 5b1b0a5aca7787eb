// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

const (
	DefaultOutputRate     = 48000
	DefaultOutputChannels = 2
	// MaxQualityBitDepth is the highest PCM depth the encoders write.
	MaxQualityBitDepth = 24
)

// Format describes an encoded output container.
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// DefaultOutputFormat is 48 kHz stereo at maximum quality.
func DefaultOutputFormat() Format {
	return Format{
		Codec:      "wav",
		SampleRate: DefaultOutputRate,
		Channels:   DefaultOutputChannels,
		BitDepth:   MaxQualityBitDepth,
	}
}

func (f Format) Validate() error {
	if f.Codec == "" {
		return fmt.Errorf("%w: empty codec", ErrInvalidFormat)
	}
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, f.SampleRate)
	}
	if f.Channels <= 0 {
		return fmt.Errorf("%w: channels %d", ErrInvalidFormat, f.Channels)
	}

	switch f.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidFormat, f.BitDepth)
	}

	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%s %dHz %dch %d-bit", f.Codec, f.SampleRate, f.Channels, f.BitDepth)
}
