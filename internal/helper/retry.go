package helper

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

type RetryableFunc[T any] func() (T, bool, error)

// RetryWithBackoff runs operation up to maxRetries+1 times. The operation
// reports via its second return value whether the failure is worth retrying
// (a lost write race or a key collision); non-retryable errors are returned
// as-is. Each retry re-runs the whole operation, so callers get a fresh read
// of any state they depend on.
func RetryWithBackoff[T any](operation RetryableFunc[T], maxRetries int, baseDelay time.Duration) (T, error) {
	var err error
	var result T
	var shouldRetry bool

	for i := 0; i <= maxRetries; i++ {
		result, shouldRetry, err = operation()

		if err == nil {
			return result, nil
		}

		if !shouldRetry {
			return result, err
		}

		if i == maxRetries {
			break
		}

		delay := baseDelay * time.Duration(math.Pow(2, float64(i)))
		slog.Warn("Operation failed, retrying...", "attempt", i+1, "delay", delay, "error", err)
		time.Sleep(delay)
	}

	return result, fmt.Errorf("operation failed after %d attempts: %w", maxRetries+1, err)
}
