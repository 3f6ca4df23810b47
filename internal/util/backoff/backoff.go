// Package backoff provides a bounded fixed-interval retry helper.
//
// It is used only for transport connection establishment; the fan-out
// orchestration never retries remote operations.
package backoff

import (
	"context"
	"fmt"
	"time"
)

// Do runs operation up to attempts times, sleeping interval between
// attempts. It returns nil on the first success, the last error after the
// attempts are exhausted, and respects context cancellation between
// attempts.
func Do(ctx context.Context, attempts int, interval time.Duration, operation func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = operation()
		if lastErr == nil {
			return nil
		}

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return fmt.Errorf("canceled after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(interval):
			}
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
