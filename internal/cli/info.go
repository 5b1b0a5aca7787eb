// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audclip/container"
)

type fileInfo struct {
	Path       string  `json:"path"`
	Format     string  `json:"format"`
	SampleRate int     `json:"sample_rate"`
	Channels   int     `json:"channels"`
	Frames     int     `json:"frames"`
	Duration   float64 `json:"duration"`
}

func newInfoCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "info INPUT",
		Short: "Show sample rate, channels and length of an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := container.Open(a.registry, args[0])
			if err != nil {
				return err
			}

			info := fileInfo{
				Path:       f.Path(),
				Format:     strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Path())), "."),
				SampleRate: f.SampleRate(),
				Channels:   f.Channels(),
				Frames:     f.TotalFrames(),
				Duration:   f.Duration(),
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				data, err := json.Marshal(info)
				if err != nil {
					return fmt.Errorf("encoding %s: %w", info.Path, err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "path:        %s\n", info.Path)
			fmt.Fprintf(out, "format:      %s\n", info.Format)
			fmt.Fprintf(out, "sample rate: %d Hz\n", info.SampleRate)
			fmt.Fprintf(out, "channels:    %d\n", info.Channels)
			fmt.Fprintf(out, "frames:      %d\n", info.Frames)
			fmt.Fprintf(out, "duration:    %.3fs\n", info.Duration)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print as JSON")

	return cmd
}
