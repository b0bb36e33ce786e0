package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/taskio/internal/adapter"
	"github.com/MKhiriev/taskio/internal/config"
	myHTTP "github.com/MKhiriev/taskio/internal/handler/http"
	"github.com/MKhiriev/taskio/internal/logger"
	"github.com/MKhiriev/taskio/internal/server"
	"github.com/MKhiriev/taskio/internal/service"
	"github.com/MKhiriev/taskio/internal/store"
	"github.com/MKhiriev/taskio/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("taskio")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	configStore := store.NewConfigStore(log)
	dispatcher := adapter.NewHTTPDispatcher(log)
	tasks := service.NewTaskRunner(configStore, dispatcher, cfg, log)

	// Without a listen address the process runs one sweep and exits.
	if cfg.Server.HTTPAddress == "" {
		report, err := tasks.Sweep(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("sweep failed")
		}
		if report.Failed > 0 {
			os.Exit(1)
		}
		return
	}

	handler := myHTTP.NewHandler(configStore, dispatcher, tasks, cfg, buildVersion, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if cfg.Runner.SweepInterval > 0 {
		job := workers.NewSweepJob(tasks, log)
		job.Start(context.Background(), cfg.Runner.SweepInterval)
		defer job.Stop()
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
