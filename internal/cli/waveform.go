// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audclip/waveform"
)

type waveformOptions struct {
	points      int
	jsonOutput  bool
	concurrency int
}

func newWaveformCmd(a *app) *cobra.Command {
	opts := waveformOptions{}

	cmd := &cobra.Command{
		Use:   "waveform INPUT...",
		Short: "Print peak amplitudes of audio files",
		Long: `Print peak amplitudes of the first channel of each input, one value per
time bucket, in [0, 1].

The number of peaks is close to --points and may exceed it by one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWaveform(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.points, "points", "n", waveform.DefaultPoints, "number of peaks per file")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print one JSON object per file")
	flags.IntVarP(&opts.concurrency, "concurrency", "j", runtime.NumCPU(), "files processed in parallel")

	return cmd
}

func (a *app) runWaveform(cmd *cobra.Command, paths []string, opts waveformOptions) error {
	var progress io.Writer
	if !opts.jsonOutput && len(paths) > 1 {
		progress = cmd.ErrOrStderr()
	}

	results := runBatch(paths, opts.concurrency, progress, func(path string) (*waveform.Summary, error) {
		a.log.Debug("decoding", "path", path)
		return waveform.Summarize(a.registry, path, opts.points)
	})

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.path, res.err)
			continue
		}

		if opts.jsonOutput {
			data, err := json.Marshal(res.value)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", res.path, err)
			}
			fmt.Fprintln(out, string(data))
			continue
		}

		printSummary(out, res.value)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

func printSummary(w io.Writer, s *waveform.Summary) {
	peaks := make([]string, len(s.Peaks))
	for i, p := range s.Peaks {
		peaks[i] = fmt.Sprintf("%.3f", p)
	}

	fmt.Fprintf(w, "%s: %.3fs, %d peaks of %d frames\n", s.Path, s.Duration, len(s.Peaks), s.Resolution)
	fmt.Fprintln(w, strings.Join(peaks, " "))
}
