// Package bulk fans one processing function out over many inputs with
// bounded parallelism. Results land in a pre-sized slice keyed by input
// index, so output order always equals input order regardless of completion
// order. The processor returns an outcome value, never an error: one input's
// failure must not abort its siblings.
package bulk

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the worker pool when the caller does not.
const DefaultConcurrency = 5

// Options tunes one bulk run.
type Options struct {
	// Concurrency caps in-flight workers; <= 0 selects DefaultConcurrency.
	Concurrency int

	// Deadline bounds the whole run; zero means no batch-level budget.
	// Workers past the deadline observe a cancelled context and must fold
	// that into their outcome value.
	Deadline time.Duration
}

// Run processes every item and returns the outcomes in input order.
func Run[In, Out any](ctx context.Context, items []In, opts Options, process func(context.Context, In) Out) []Out {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if opts.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Deadline)
		defer cancel()
	}

	out := make([]Out, len(items))

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			out[i] = process(ctx, item)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes slot assembly.
	_ = g.Wait()

	return out
}
