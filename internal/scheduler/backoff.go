package scheduler

import (
	"context"
	"time"
)

// Backoff policy for dispatch retries (spec §4.E step 6): initial 1s,
// factor 2, capped at 5 minutes, at most 8 attempts before giving up.
const (
	initialBackoff = time.Second
	backoffFactor  = 2
	maxBackoff     = 5 * time.Minute
	maxAttempts    = 8
)

// retryWithBackoff calls attempt until it succeeds, ctx is cancelled, or
// maxAttempts is exhausted, sleeping between attempts via sleep (injected
// so tests can run the policy without real wall-clock delay).
func retryWithBackoff(ctx context.Context, sleep func(time.Duration), attempt func() error) error {
	wait := initialBackoff
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		lastErr = attempt()
		if lastErr == nil {
			return nil
		}
		if i == maxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		sleep(wait)
		wait *= backoffFactor
		if wait > maxBackoff {
			wait = maxBackoff
		}
	}
	return lastErr
}
