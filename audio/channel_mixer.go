// SPDX-License-Identifier: EPL-2.0

package audio

// Remix converts buf to the given channel count.
//
// Mixing down to mono averages every channel. Mono input is duplicated into
// every output channel. Otherwise the first channels are kept and, when more
// outputs than inputs are requested, the last input channel is repeated.
func Remix(buf *Buffer, channels int) *Buffer {
	frames := buf.Frames()
	out := NewBuffer(buf.SampleRate, channels, frames)
	in := buf.Channels()

	if in == 0 || channels == 0 {
		return out
	}

	switch {
	case in == channels:
		for c := range channels {
			copy(out.Data[c], buf.Data[c])
		}

	case channels == 1:
		mixToMono(out.Data[0], buf.Data)

	case in == 1:
		for c := range channels {
			copy(out.Data[c], buf.Data[0])
		}

	default:
		for c := range channels {
			copy(out.Data[c], buf.Data[min(c, in-1)])
		}
	}

	return out
}

func mixToMono(dst []float32, src [][]float32) {
	channels := len(src)

	// Unrolled loop for common cases
	switch channels {
	case 2:
		left, right := src[0], src[1]
		for f := range dst {
			dst[f] = (left[f] + right[f]) * 0.5
		}
	default:
		invChannels := float32(1.0) / float32(channels)
		for f := range dst {
			sum := float32(0)
			for c := range channels {
				sum += src[c][f]
			}
			dst[f] = sum * invChannels
		}
	}
}
