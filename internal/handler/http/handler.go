package http

import (
	"time"

	"github.com/MKhiriev/taskio/internal/adapter"
	"github.com/MKhiriev/taskio/internal/config"
	"github.com/MKhiriev/taskio/internal/logger"
	"github.com/MKhiriev/taskio/internal/service"
	"github.com/MKhiriev/taskio/internal/store"
)

type Handler struct {
	configs    store.ConfigStore
	dispatcher adapter.Dispatcher
	tasks      service.TaskService

	configDir       string
	dispatchTimeout time.Duration
	version         string

	logger *logger.Logger
}

func NewHandler(configs store.ConfigStore, dispatcher adapter.Dispatcher, tasks service.TaskService, cfg *config.StructuredConfig, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		configs:         configs,
		dispatcher:      dispatcher,
		tasks:           tasks,
		configDir:       cfg.Runner.ConfigDir,
		dispatchTimeout: cfg.Dispatch.Timeout,
		version:         version,
		logger:          logger,
	}
}
