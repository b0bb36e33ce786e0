// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/taskio/internal/logger"
	"github.com/MKhiriev/taskio/internal/service"
)

type sweepJob struct {
	tasks  service.TaskService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSweepJob creates a sweepJob that calls tasks.Sweep on a ticker.
// The job is idle until Start is called.
func NewSweepJob(tasks service.TaskService, logger *logger.Logger) SweepJob {
	return &sweepJob{tasks: tasks, logger: logger}
}

// Start implements SweepJob. It stops any previously running job, then
// launches a background goroutine that sweeps once immediately and again
// every interval. If interval is zero or negative it defaults to 20 seconds.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *sweepJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 20 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.sweep(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

// Stop implements SweepJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *sweepJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// sweep runs a single pass. A failed sweep is logged and never stops the job.
func (j *sweepJob) sweep(ctx context.Context) {
	if _, err := j.tasks.Sweep(ctx); err != nil {
		j.logger.Error().Err(err).Msg("background sweep failed")
	}
}
