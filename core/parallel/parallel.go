package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers resolves an n_jobs style setting: values < 1 mean all CPU cores,
// and the result never exceeds items.
func Workers(nJobs, items int) int {
	workers := nJobs
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// ForEach calls fn(i) for every i in [0, items) using at most nJobs
// goroutines (see Workers) and returns the first error encountered.
// With a single worker the calls run sequentially on the caller's
// goroutine and stop at the first error.
func ForEach(items, nJobs int, fn func(i int) error) error {
	if items == 0 {
		return nil
	}

	workers := Workers(nJobs, items)
	if workers == 1 {
		for i := 0; i < items; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < items; i++ {
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}
