package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/aglebova/distractors/internal/distractor"
)

// Generator is the slice of the distractor generator the runner needs.
type Generator interface {
	Generate(ctx context.Context, req distractor.Request) ([]string, error)
}

// Options tunes a batch run.
type Options struct {
	// Count is the number of distractors requested per pair.
	Count int

	// Progress receives the progress bar; defaults to stderr.
	// Set to io.Discard in tests.
	Progress io.Writer
}

// Run generates distractors for each pair in order, one at a time.
//
// Shortfall results (fewer distractors than requested) are recorded with a
// warning and the run continues. Any other generation error stops the run;
// the results completed so far are returned alongside the error so the
// caller can persist partial output.
func Run(ctx context.Context, gen Generator, pairs []Pair, opts Options) ([]Result, Stats, error) {
	progress := opts.Progress
	if progress == nil {
		progress = os.Stderr
	}

	bar := progressbar.NewOptions(len(pairs),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Generating distractors"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(progress) }),
	)

	var results []Result
	var stats Stats

	for _, pair := range pairs {
		start := time.Now()
		distractors, err := gen.Generate(ctx, distractor.Request{
			Word:           pair.Word,
			Translation:    pair.Translation,
			SourceLanguage: pair.SourceLanguage,
			TargetLanguage: pair.TargetLanguage,
			Count:          opts.Count,
		})
		stats.Durations = append(stats.Durations, time.Since(start))

		var shortfall *distractor.ShortfallError
		if err != nil && !errors.As(err, &shortfall) {
			return results, stats, fmt.Errorf("generate distractors for %q: %w", pair.Word, err)
		}
		if shortfall != nil {
			fmt.Fprintf(progress, "warning: %q: %v\n", pair.Word, err)
		}

		if distractors == nil {
			distractors = []string{}
		}
		results = append(results, Result{
			Word:        pair.Word,
			Translation: pair.Translation,
			Distractors: distractors,
		})
		_ = bar.Add(1)
	}

	return results, stats, nil
}
