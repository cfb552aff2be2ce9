package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Task holds the input, result, and error of one processed unit.
type Task[T any, R any] struct {
	Input  T
	Result R
	Err    error
}

// ProcessFunc processes a single input.
type ProcessFunc[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool is a generic worker pool with fixed concurrency, used to fan out
// per-file scans. Results keep input order.
type Pool[T any, R any] struct {
	workers int
	process ProcessFunc[T, R]
}

// NewPool creates a pool with at least one worker.
func NewPool[T any, R any](workers int, fn ProcessFunc[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{workers: workers, process: fn}
}

// Execute runs all inputs through the pool, honoring cancellation.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Task[T, R] {
	results := make([]Task[T, R], len(inputs))
	indexCh := make(chan int, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-indexCh:
					if !ok {
						return
					}
					result, err := p.process(ctx, inputs[idx])
					results[idx] = Task[T, R]{Input: inputs[idx], Result: result, Err: err}
					if err != nil {
						log.Error().Err(err).Int("index", idx).Msg("Task failed")
					}
				}
			}
		}()
	}

	for i := range inputs {
		indexCh <- i
	}
	close(indexCh)

	wg.Wait()
	return results
}

// Batch splits items into slices of at most batchSize.
func Batch[T any](items []T, batchSize int) [][]T {
	if batchSize <= 0 {
		batchSize = 1
	}
	var batches [][]T
	for i := 0; i < len(items); i += batchSize {
		end := i + batchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}
	return batches
}
