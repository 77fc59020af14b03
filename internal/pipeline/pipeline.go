package pipeline

import (
	"runtime"
	"sync"
)

// Map evaluates fn over items on a bounded pool of workers. Results and errors are
// returned by input index, so the output order never depends on scheduling.
// workers <= 0 means one worker per CPU.
func Map[T, R any](items []T, workers int, fn func(T) (R, error)) ([]R, []error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	if len(items) == 0 || fn == nil {
		return results, errs
	}
	if workers <= 0 {
		workers = max(runtime.NumCPU(), 1)
	}
	workers = min(workers, len(items))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = fn(items[i])
			}
		}()
	}
	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results, errs
}

// FirstError returns the lowest-indexed non-nil error and its index, or -1.
func FirstError(errs []error) (int, error) {
	for i, err := range errs {
		if err != nil {
			return i, err
		}
	}
	return -1, nil
}
