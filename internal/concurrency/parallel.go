package concurrency

import (
	"context"
	"sync"
)

// ForEach runs fn for every item on up to maxWorkers goroutines and returns
// the errors it collected (nil when everything succeeded). Results are not
// collected; use it for independent side-effecting fetches.
func ForEach[T any](
	ctx context.Context,
	items []T,
	maxWorkers int,
	fn func(ctx context.Context, index int, item T) error,
) []error {
	if len(items) == 0 {
		return nil
	}
	if maxWorkers <= 0 || maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	jobs := make(chan int, len(items))
	errCh := make(chan error, len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				if err := fn(ctx, i, items[i]); err != nil {
					errCh <- err
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	return errs
}

// Map runs fn over items in parallel and returns results in input order.
// Errors are reported per-index; a failed index keeps the zero value.
func Map[T any, R any](
	ctx context.Context,
	items []T,
	maxWorkers int,
	fn func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	results := make([]R, len(items))
	errs := ForEach(ctx, items, maxWorkers, func(ctx context.Context, i int, item T) error {
		r, err := fn(ctx, i, item)
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	})
	return results, errs
}
