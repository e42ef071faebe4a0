package parallel

import "sync"

// Collect runs fn for each index [0, n) with bounded concurrency,
// collecting results into a slice that preserves index order.
func Collect[T any](n, concurrency int, fn func(i int) T) []T {
	if n == 0 {
		return nil
	}

	results := make([]T, n)
	ForEach(n, concurrency, func(i int) {
		results[i] = fn(i)
	})
	return results
}

// ForEach runs fn for each index [0, n) with bounded concurrency and
// waits for all invocations to finish. A concurrency of 1 degenerates to
// a sequential loop in index order.
func ForEach(n, concurrency int, fn func(i int)) {
	if n == 0 {
		return
	}

	if concurrency <= 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for i := range n {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fn(idx)
		}(i)
	}
	wg.Wait()
}
