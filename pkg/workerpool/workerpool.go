// Package workerpool runs a bounded set of goroutines over a list of tasks.
package workerpool

import (
	"context"
	"sync"
)

// Task is a unit of work. Tasks observe ctx and return promptly once it
// ends.
type Task func(ctx context.Context) error

// Run executes every task using at most workers goroutines. The first error
// cancels the remaining tasks and is returned; a canceled ctx surfaces as
// its error.
func Run(ctx context.Context, workers int, tasks []Task) error {
	if len(tasks) == 0 {
		return ctx.Err()
	}
	if workers <= 0 || workers > len(tasks) {
		workers = len(tasks)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan Task)
	errs := make(chan error, 1)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-queue:
					if !ok {
						return
					}
					if err := task(ctx); err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(queue)
		for _, task := range tasks {
			select {
			case <-ctx.Done():
				return
			case queue <- task:
			}
		}
	}()

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return err
	}
	return ctx.Err()
}
