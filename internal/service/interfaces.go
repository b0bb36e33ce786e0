package service

import (
	"context"

	"github.com/MKhiriev/taskio/models"
)

// TaskService runs sweeps over the task config directory.
type TaskService interface {
	// Sweep performs one pass: list configs, evaluate each task's trigger
	// window, dispatch due webhooks with retries, and persist execution
	// marks. It returns early only when ctx is cancelled; per-task failures
	// are accumulated in the report instead.
	Sweep(ctx context.Context) (models.SweepReport, error)
}
