// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelCheckEvery is how many paths a worker matches between
// cancellation checks.
const parallelCheckEvery = 256

// FilterParallel is Filter spread over up to workers goroutines. The result
// keeps input order. A non-positive workers value uses runtime.NumCPU.
func (m *Matcher) FilterParallel(ctx context.Context, paths []string, workers int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	workers = min(workers, len(paths))
	if workers <= 1 {
		return m.Filter(paths), nil
	}

	chunkSize := (len(paths) + workers - 1) / workers
	chunks := (len(paths) + chunkSize - 1) / chunkSize
	results := make([][]string, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for c := range chunks {
		start := c * chunkSize
		end := min(start+chunkSize, len(paths))

		g.Go(func() error {
			kept := make([]string, 0, end-start)
			for i, p := range paths[start:end] {
				if i%parallelCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				if m.Match(p) {
					kept = append(kept, p)
				}
			}

			results[c] = kept
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}

	out := make([]string, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}

	m.debug("parallel filter", "paths", len(paths), "workers", workers, "matched", total)
	return m.noNull(out), nil
}
