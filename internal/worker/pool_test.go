package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
)

// occupy fills every slot of p and returns a func that frees them.
func occupy(t *testing.T, p *Pool, slots int) func() {
	t.Helper()
	release := make(chan struct{})
	started := make(chan struct{}, slots)
	var wg sync.WaitGroup
	for i := 0; i < slots; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func(context.Context) error {
				started <- struct{}{}
				<-release
				return nil
			})
		}()
	}
	for i := 0; i < slots; i++ {
		<-started
	}
	return func() {
		close(release)
		wg.Wait()
	}
}

func TestPool_Do(t *testing.T) {
	t.Run("RunsJobAndReturnsItsError", func(t *testing.T) {
		p := NewPool(1, 0)
		jobErr := errors.New("boom")

		err := p.Do(context.Background(), func(context.Context) error { return jobErr })
		assert.ErrorIs(t, err, jobErr)

		ran := false
		require.NoError(t, p.Do(context.Background(), func(context.Context) error { ran = true; return nil }))
		assert.True(t, ran, "slot must be released after a failed job")
	})

	t.Run("SaturatedPoolRejectsImmediately", func(t *testing.T) {
		p := NewPool(2, 0)
		release := occupy(t, p, 2)
		defer release()

		called := false
		err := p.Do(context.Background(), func(context.Context) error { called = true; return nil })
		assert.ErrorIs(t, err, app_errors.ErrBusy)
		assert.False(t, called)
	})

	t.Run("QueuedJobRunsWhenSlotFrees", func(t *testing.T) {
		p := NewPool(1, time.Second)
		release := occupy(t, p, 1)

		done := make(chan error, 1)
		go func() {
			done <- p.Do(context.Background(), func(context.Context) error { return nil })
		}()
		time.Sleep(20 * time.Millisecond)
		release()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("queued job never ran")
		}
	})

	t.Run("QueueWaitExpires", func(t *testing.T) {
		p := NewPool(1, 20*time.Millisecond)
		release := occupy(t, p, 1)
		defer release()

		err := p.Do(context.Background(), func(context.Context) error { return nil })
		assert.ErrorIs(t, err, app_errors.ErrBusy)
	})

	t.Run("CallerCancelledWhileQueued", func(t *testing.T) {
		p := NewPool(1, time.Second)
		release := occupy(t, p, 1)
		defer release()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := p.Do(ctx, func(context.Context) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPool_NeverExceedsSize(t *testing.T) {
	const size = 3
	p := NewPool(size, time.Second)

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func(context.Context) error {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(size))
}
