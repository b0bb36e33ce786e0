// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the taskio
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Runner holds the task sweep settings: where configs live, how wide
	// the trigger window is, and how dispatches are retried.
	Runner Runner `envPrefix:"RUNNER_"`

	// Dispatch holds settings for the outbound HTTP dispatcher.
	Dispatch Dispatch `envPrefix:"DISPATCH_"`

	// Server holds network address and timeout settings for the optional
	// HTTP service API. When HTTPAddress is empty no server is started and
	// the process runs a single sweep instead.
	Server Server `envPrefix:"SERVER_"`

	// Secrets holds secret material injected into task payloads.
	Secrets Secrets

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Runner holds configuration for the task sweep.
type Runner struct {
	// ConfigDir is the directory scanned for *.json task files.
	// Env: RUNNER_CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`

	// Tolerance is how long after its trigger time a task is still allowed
	// to fire. Past the window the task is expired and skipped.
	// Env: RUNNER_TOLERANCE
	Tolerance time.Duration `env:"TOLERANCE"`

	// MaxRetries is the number of dispatch attempts per task, first attempt
	// included.
	// Env: RUNNER_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// RetryDelay is the pause between dispatch attempts.
	// Env: RUNNER_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// SweepInterval, when positive and the service API is enabled, repeats
	// the sweep on a ticker. Zero disables the background job.
	// Env: RUNNER_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Dispatch holds configuration for the outbound HTTP dispatcher.
type Dispatch struct {
	// Timeout bounds one whole request/response cycle.
	// Env: DISPATCH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080"). Empty disables the
	// server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Secrets holds secret material loaded from the environment. Secrets never
// come from flags or the JSON config file.
type Secrets struct {
	// DeviceKeys is the raw JSON payload of the DEVICE_KEYS environment
	// variable: either a list of keys to append to every task's
	// device_keys, or an alias-to-key object used to resolve placeholders.
	// Env: DEVICE_KEYS
	DeviceKeys string `env:"DEVICE_KEYS"`
}

// Built-in defaults, applied last in the merge chain so that any explicit
// source wins.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Runner: Runner{
			ConfigDir:  "configs",
			Tolerance:  30 * time.Minute,
			MaxRetries: 3,
			RetryDelay: 2 * time.Second,
		},
		Dispatch: Dispatch{
			Timeout: 20 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
