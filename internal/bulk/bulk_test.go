package bulk

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunPreservesInputOrder(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	out := Run(context.Background(), items, Options{Concurrency: 8}, func(_ context.Context, n int) string {
		// Finish out of submission order on purpose.
		time.Sleep(time.Duration(50-n) * time.Millisecond / 10)
		return fmt.Sprintf("item-%d", n)
	})

	assert.Len(t, out, len(items))
	for i, got := range out {
		assert.Equal(t, fmt.Sprintf("item-%d", i), got)
	}
}

func TestRunBoundsConcurrency(t *testing.T) {
	const limit = 3
	var inFlight, peak atomic.Int64

	items := make([]int, 30)
	Run(context.Background(), items, Options{Concurrency: limit}, func(_ context.Context, _ int) struct{} {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}
	})

	assert.LessOrEqual(t, peak.Load(), int64(limit))
	assert.Positive(t, peak.Load())
}

func TestRunDefaultConcurrency(t *testing.T) {
	out := Run(context.Background(), []int{1, 2, 3}, Options{}, func(_ context.Context, n int) int {
		return n * 2
	})
	assert.Equal(t, []int{2, 4, 6}, out)
}

func TestRunIsolatesFailures(t *testing.T) {
	type outcome struct {
		value int
		err   error
	}

	out := Run(context.Background(), []int{1, 2, 3}, Options{Concurrency: 2}, func(_ context.Context, n int) outcome {
		if n == 2 {
			return outcome{err: fmt.Errorf("item %d exploded", n)}
		}
		return outcome{value: n}
	})

	assert.NoError(t, out[0].err)
	assert.Error(t, out[1].err)
	assert.NoError(t, out[2].err)
	assert.Equal(t, 3, out[2].value)
}

func TestRunDeadlineCancelsWorkers(t *testing.T) {
	items := make([]int, 10)
	out := Run(context.Background(), items, Options{Concurrency: 2, Deadline: 20 * time.Millisecond}, func(ctx context.Context, _ int) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})

	// Every slot is still filled; late workers observe the expired budget.
	assert.Len(t, out, len(items))
	for _, err := range out {
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}
}

func TestRunEmptyInput(t *testing.T) {
	out := Run(context.Background(), nil, Options{}, func(_ context.Context, _ int) int { return 0 })
	assert.Empty(t, out)
}
