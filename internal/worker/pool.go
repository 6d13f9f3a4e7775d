// Package worker bounds how many expensive jobs (PDF ingestion, inference) run
// at the same time.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/metrics"
)

// Pool runs jobs on the caller's goroutine once one of size slots is free.
type Pool struct {
	sem       *semaphore.Weighted
	queueWait time.Duration
}

// NewPool creates a pool with size slots. A caller waits at most queueWait for a
// slot; zero means a saturated pool rejects immediately.
func NewPool(size int, queueWait time.Duration) *Pool {
	return &Pool{sem: semaphore.NewWeighted(int64(size)), queueWait: queueWait}
}

// Do runs job in a slot. It returns app_errors.ErrBusy without running job when
// no slot frees up in time.
func (p *Pool) Do(ctx context.Context, job func(ctx context.Context) error) error {
	if err := p.acquire(ctx); err != nil {
		return err
	}
	defer p.sem.Release(1)
	return job(ctx)
}

func (p *Pool) acquire(ctx context.Context) error {
	if p.sem.TryAcquire(1) {
		return nil
	}
	if p.queueWait > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, p.queueWait)
		defer cancel()
		err := p.sem.Acquire(waitCtx, 1)
		if err == nil {
			return nil
		}
		// The caller going away is not saturation.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
	}
	metrics.WorkerRejections.Inc()
	slog.Warn("Worker pool saturated, rejecting job")
	return app_errors.ErrBusy
}
