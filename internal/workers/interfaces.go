// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// SweepJob is a background worker that sweeps the config directory on a
// ticker. The job is idle until Start is called; Stop blocks until the
// background goroutine has exited.
type SweepJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
