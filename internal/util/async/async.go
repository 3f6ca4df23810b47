// Package async provides a named-task parallel runner.
//
// It backs the opt-in parallel fan-out mode only; the default distribution
// path is strictly sequential and never imports this package's runner.
package async

import (
	"context"
	"fmt"
)

// Task is one named asynchronous operation.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunParallel starts all tasks concurrently and waits for every one to
// finish. The first error encountered is returned after all tasks have
// completed; remaining errors are dropped.
func RunParallel(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	type result struct {
		name string
		err  error
	}

	resultChan := make(chan result, len(tasks))

	for _, task := range tasks {
		go func() {
			resultChan <- result{name: task.Name, err: task.Func(ctx)}
		}()
	}

	var firstError error
	for range len(tasks) {
		res := <-resultChan
		if res.err != nil && firstError == nil {
			firstError = fmt.Errorf("%s: %w", res.name, res.err)
		}
	}

	return firstError
}
