// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"
)

type batchResult[T any] struct {
	path  string
	value T
	err   error
}

// runBatch applies fn to every path on up to concurrency workers. Results
// come back in the order of paths. A progress bar is drawn on progress when
// it is not nil.
func runBatch[T any](paths []string, concurrency int, progress io.Writer, fn func(string) (T, error)) []batchResult[T] {
	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("reading waveforms"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowIts(),
			progressbar.OptionClearOnFinish(),
		)
	}

	concurrency = max(1, min(concurrency, len(paths)))
	results := make([]batchResult[T], len(paths))
	jobs := make(chan int, len(paths))

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				v, err := fn(paths[i])
				results[i] = batchResult[T]{path: paths[i], value: v, err: err}
				if bar != nil {
					bar.Add(1)
				}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if bar != nil {
		bar.Finish()
	}

	return results
}
