// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/taskio/internal/adapter"
	"github.com/MKhiriev/taskio/internal/config"
	"github.com/MKhiriev/taskio/internal/dynamic"
	"github.com/MKhiriev/taskio/internal/logger"
	"github.com/MKhiriev/taskio/internal/store"
	"github.com/MKhiriev/taskio/models"
)

type taskRunner struct {
	store      store.ConfigStore
	dispatcher adapter.Dispatcher

	configDir  string
	tolerance  time.Duration
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration

	keys   dynamic.Value
	logger *logger.Logger

	// now is a hook for tests; production code always uses time.Now.
	now func() time.Time
}

// NewTaskRunner constructs the default [TaskService]. Secret keys are parsed
// from cfg.Secrets once, at construction.
func NewTaskRunner(configStore store.ConfigStore, dispatcher adapter.Dispatcher, cfg *config.StructuredConfig, logger *logger.Logger) TaskService {
	retryDelay := cfg.Runner.RetryDelay
	if retryDelay <= 0 {
		// NewConstant panics on a non-positive interval.
		retryDelay = time.Second
	}

	return &taskRunner{
		store:      configStore,
		dispatcher: dispatcher,
		configDir:  cfg.Runner.ConfigDir,
		tolerance:  cfg.Runner.Tolerance,
		maxRetries: cfg.Runner.MaxRetries,
		retryDelay: retryDelay,
		timeout:    cfg.Dispatch.Timeout,
		keys:       loadSecretKeys(cfg.Secrets.DeviceKeys, logger),
		logger:     logger,
		now:        time.Now,
	}
}

// Sweep implements [TaskService].
func (r *taskRunner) Sweep(ctx context.Context) (models.SweepReport, error) {
	files := r.store.ListConfigs(r.configDir)
	report := models.SweepReport{Scanned: len(files)}

	if len(files) == 0 {
		r.logger.Info().Str("dir", r.configDir).Msg("no config files found")
		return report, nil
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		r.processFile(ctx, path, &report)
	}

	r.logger.Info().
		Int("scanned", report.Scanned).
		Int("fired", report.Fired).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Bool("changed", report.Changed).
		Msg("sweep finished")

	return report, nil
}

func (r *taskRunner) processFile(ctx context.Context, path string, report *models.SweepReport) {
	log := r.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("file", path)
	})

	value, err := r.store.ReadConfig(path)
	if err != nil {
		log.Error().Err(err).Msg("cannot read task config")
		report.Failed++
		return
	}

	task, ok := models.TaskFromValue(value)
	if !ok {
		log.Error().Msg("task config is not a json object")
		report.Failed++
		return
	}

	if task.Executed() {
		log.Debug().Msg("task already executed, skipping")
		report.Skipped++
		return
	}

	triggerTime := task.TriggerTime()
	if triggerTime == "" {
		log.Debug().Msg("task has no trigger time, skipping")
		report.Skipped++
		return
	}

	loc := resolveLocation(task.Timezone(), log)
	now := r.now().In(loc)

	state, lateness, err := triggerWindow(triggerTime, loc, r.tolerance, now)
	if err != nil {
		log.Error().Err(err).Msg("cannot evaluate trigger window")
		report.Failed++
		return
	}

	log.Debug().
		Str("trigger_time", triggerTime).
		Str("state", state.String()).
		Dur("lateness", lateness).
		Msg("trigger window evaluated")

	if state != triggerOpen {
		report.Skipped++
		return
	}

	url := task.WebhookURL()
	if url == "" {
		log.Error().Msg("task is due but has no webhook url")
		report.Failed++
		return
	}

	// Inject secrets into a copy of the body so they are never saved back.
	payload := task.Body()
	injectDeviceKeys(payload, r.keys, log)

	result, err := r.dispatchWithRetry(ctx, task.Method(), url, payload)
	if err != nil {
		log.Error().Err(err).Int("status", result.StatusCode).Msg("webhook dispatch failed")
		report.Failed++
		return
	}

	log.Info().Int("status", result.StatusCode).Msg("webhook dispatched")
	report.Fired++

	task.MarkExecuted(now.Format(models.TimeLayout))
	if err := r.store.SaveConfig(path, task.Value()); err != nil {
		log.Error().Err(err).Msg("cannot save executed mark")
		report.Failed++
		return
	}

	report.Changed = true
}

// dispatchWithRetry sends the webhook request up to maxRetries times with a
// constant delay. Network faults and non-2xx responses are retried;
// anything rejected before network activity (unsupported method, payload
// not representable as query parameters) is permanent.
func (r *taskRunner) dispatchWithRetry(ctx context.Context, method, url string, payload dynamic.Value) (models.Result, error) {
	attempts := r.maxRetries
	if attempts < 1 {
		attempts = 1
	}

	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(r.retryDelay))

	var result models.Result
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		res, err := r.dispatcher.Send(ctx, models.RequestSpec{
			Method:  method,
			URL:     url,
			Payload: payload,
			Timeout: r.timeout,
		})
		if err != nil {
			if errors.Is(err, adapter.ErrNetwork) {
				r.logger.Warn().Err(err).Int("attempt", attempt).Msg("dispatch attempt failed")
				return retry.RetryableError(err)
			}
			return err
		}

		result = res
		if !res.OK() {
			r.logger.Warn().Int("status", res.StatusCode).Int("attempt", attempt).Msg("server rejected webhook")
			return retry.RetryableError(fmt.Errorf("server returned status %d", res.StatusCode))
		}

		return nil
	})
	if err != nil {
		return result, err
	}

	return result, nil
}
