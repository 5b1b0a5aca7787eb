// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/container"
)

var version = "0.3.0"

// app carries what every subcommand shares.
type app struct {
	verbose  bool
	log      *slog.Logger
	registry *audio.Registry
}

func (a *app) setupLogger(w io.Writer) {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewRootCmd builds the audclip command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		registry: container.DefaultRegistry(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:   "audclip",
		Short: "Trim, cut and draw waveforms of audio clips",
		Long: `audclip edits recorded audio clips and extracts their waveforms.

Input formats: WAV, FLAC, MP3, Ogg Vorbis, AIFF.
Output formats: WAV and FLAC, chosen by the output file extension.

Edits are written to a temporary file next to the output and renamed over
it when complete, so editing a file in place is safe.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.setupLogger(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress details to stderr")

	root.SetVersionTemplate("audclip version {{.Version}}\n")
	root.Version = version

	root.AddCommand(
		newEditCmd(a, trimMode),
		newEditCmd(a, cutMode),
		newWaveformCmd(a),
		newInfoCmd(a),
	)

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
