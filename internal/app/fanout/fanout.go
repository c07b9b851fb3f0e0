// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration. The portfolio aggregation uses it to
// compute per-project views with a fixed worker budget, preserving input
// order in results.
//
// The helper is intentionally minimal: it manages a fixed worker pool fed
// from an index channel and honors context cancellation. It has no
// dependencies beyond the standard library, keeping it reusable across
// entities and services.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled before an item is picked up, that item records
// ctx.Err() and fn is not called for it. Items already being processed run
// to completion (fn is responsible for checking ctx internally if it
// supports cancellation).
//
// Run blocks until all workers complete. If items is empty, it returns an
// empty non-nil slice immediately.
//
// maxWorkers must be >= 1. Values above len(items) are capped to the item
// count.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	results := make([]Result[R], len(items))
	indexes := make(chan int)

	var wg sync.WaitGroup
	wg.Add(maxWorkers)
	for w := 0; w < maxWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range indexes {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		indexes <- i
	}
	close(indexes)

	wg.Wait()
	return results
}
