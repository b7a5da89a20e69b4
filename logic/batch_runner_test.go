package logic

import (
	"context"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestRunBatch_CapCountsSuccesses(t *testing.T) {
	var tried, done []string
	act := func(_ context.Context, item string) bool {
		tried = append(tried, item)
		return item != "b"
	}
	n := runBatch(context.Background(), []string{"a", "b", "c", "d", "e"}, 3, 0, act, func(item string) {
		done = append(done, item)
	})

	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"a", "b", "c", "d"}, tried)
	assert.Equal(t, []string{"a", "c", "d"}, done)
}

func TestRunBatch_NoCap(t *testing.T) {
	count := 0
	n := runBatch(context.Background(), []string{"a", "b", "c"}, 0, 0,
		func(context.Context, string) bool { return true },
		func(string) { count++ })
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, count)
}

func TestRunBatch_EmptyIsNoop(t *testing.T) {
	n := runBatch(context.Background(), nil, 5, time.Hour,
		func(context.Context, string) bool { t.Fatal("no action expected"); return false },
		nil)
	assert.Equal(t, 0, n)
}

func TestRunBatch_FewerCandidatesThanCap(t *testing.T) {
	n := runBatch(context.Background(), []string{"a", "b"}, 20, 0,
		func(context.Context, string) bool { return true }, nil)
	assert.Equal(t, 2, n)
}

func TestRunBatch_PacingBetweenAttempts(t *testing.T) {
	var stamps []time.Time
	pacing := 20 * time.Millisecond
	runBatch(context.Background(), []string{"a", "b", "c"}, 0, pacing,
		func(context.Context, string) bool { stamps = append(stamps, time.Now()); return false }, nil)

	assert.Len(t, stamps, 3)
	for i := 1; i < len(stamps); i++ {
		assert.GreaterOrEqual(t, stamps[i].Sub(stamps[i-1]), pacing)
	}
}

func TestRunBatch_CancelStopsBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var tried []string
	start := time.Now()
	n := runBatch(ctx, []string{"a", "b", "c"}, 0, time.Minute,
		func(_ context.Context, item string) bool {
			tried = append(tried, item)
			cancel()
			return true
		}, nil)

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"a"}, tried)
	assert.Less(t, time.Since(start), 10*time.Second)
}
