// Package fanout runs a function across a slice with bounded concurrency,
// keeping results in input order.
package fanout

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines and
// blocks until all finish. Results[i] belongs to items[i].
//
// An item still waiting for a worker when ctx is canceled gets ctx.Err()
// and fn is not called for it. A panic in fn is recorded as that item's
// error, wrapping a *guard.PanicError. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return
			}

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			results[i] = call(ctx, i, item, fn)
		})
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, i int, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: fmt.Errorf("fanout item %d: %w", i, &guard.PanicError{Value: v})}
		}
	}()

	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
