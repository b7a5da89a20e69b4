package logic

import (
	"context"
	"time"
)

// runBatch applies act to candidates in order until limit of them succeed (limit <= 0: no cap).
// Successive attempts are spaced by pacing. Failures are skipped, not retried.
// A cancelled ctx ends the batch early. Returns the number of successes.
func runBatch(
	ctx context.Context,
	candidates []string,
	limit int,
	pacing time.Duration,
	act func(ctx context.Context, item string) bool,
	onSuccess func(item string),
) int {

	succeeded := 0
	for i, item := range candidates {
		if limit > 0 && succeeded >= limit {
			break
		}
		if i > 0 && !sleepCtx(ctx, pacing) {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if !act(ctx, item) {
			continue
		}
		succeeded++
		if onSuccess != nil {
			onSuccess(item)
		}
	}
	return succeeded
}

// sleepCtx waits for d, or until ctx is done. Returns false if ctx ended the wait.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
