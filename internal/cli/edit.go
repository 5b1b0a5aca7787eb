// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/container"
	"github.com/ik5/audclip/edit"
)

type editMode int

const (
	trimMode editMode = iota
	cutMode
)

type editOptions struct {
	start    float64
	end      float64
	output   string
	codec    string
	rate     int
	channels int
	bitDepth int
}

func newEditCmd(a *app, mode editMode) *cobra.Command {
	opts := editOptions{}

	cmd := &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEdit(cmd, mode, args[0], opts)
		},
	}

	switch mode {
	case trimMode:
		cmd.Use = "trim INPUT --start S --end E [-o OUTPUT]"
		cmd.Short = "Keep only the audio between two times"
	case cutMode:
		cmd.Use = "cut INPUT --start S --end E [-o OUTPUT]"
		cmd.Short = "Remove the audio between two times"
	}
	cmd.Long = cmd.Short + `.

Times are in seconds. Without -o the input file is replaced.
The output codec follows the output extension (.wav or .flac).`

	def := audio.DefaultOutputFormat()
	flags := cmd.Flags()
	flags.Float64Var(&opts.start, "start", 0, "range start in seconds")
	flags.Float64Var(&opts.end, "end", 0, "range end in seconds")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: edit the input in place)")
	flags.StringVar(&opts.codec, "codec", "", "output codec, wav or flac (default: from the output extension)")
	flags.IntVar(&opts.rate, "rate", def.SampleRate, "output sample rate in Hz")
	flags.IntVar(&opts.channels, "channels", def.Channels, "output channel count")
	flags.IntVar(&opts.bitDepth, "bit-depth", def.BitDepth, "output bit depth (16, 24 or 32)")

	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *app) runEdit(cmd *cobra.Command, mode editMode, input string, opts editOptions) error {
	output := opts.output
	if output == "" {
		output = input
	}

	codec, err := a.outputCodec(output, opts.codec)
	if err != nil {
		return err
	}

	ed := &edit.Editor{
		Registry: a.registry,
		Format: audio.Format{
			Codec:      codec,
			SampleRate: opts.rate,
			Channels:   opts.channels,
			BitDepth:   opts.bitDepth,
		},
	}
	if err := ed.Format.Validate(); err != nil {
		return err
	}

	r := audio.TimeRange{Start: opts.start, End: opts.end}
	a.log.Debug("editing", "mode", cmd.Name(), "input", input, "output", output,
		"range", r.String(), "format", ed.Format.String())

	var res edit.Result
	switch mode {
	case trimMode:
		res, err = ed.Trim(input, r, output)
	case cutMode:
		res, err = ed.Cut(input, r, output)
	}
	if err != nil {
		return err
	}

	a.log.Debug("committed", "output", res.Path, "frames", res.Frames)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %.3fs (%d frames at %d Hz, %d ch)\n",
		res.Path, res.Duration(), res.Frames, res.SampleRate, res.Channels)

	return nil
}

// outputCodec picks the encoder for path. An explicit codec must agree with
// the path's extension, since containers are recognised by extension when
// they are read back.
func (a *app) outputCodec(path, codec string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	if codec == "" {
		if _, ok := a.registry.Encoder(ext); !ok {
			return "", fmt.Errorf("%w: cannot write %q files, use -o with a .wav or .flac name",
				audio.ErrUnsupportedFormat, "."+ext)
		}
		return ext, nil
	}

	codec = strings.ToLower(codec)
	if _, ok := a.registry.Encoder(codec); !ok {
		return "", fmt.Errorf("%w: codec %q", audio.ErrUnsupportedFormat, codec)
	}
	if want := container.Extension(codec); "."+ext != want {
		return "", fmt.Errorf("codec %s needs an output ending in %s, got %s", codec, want, path)
	}

	return codec, nil
}
