// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"RUNNER_CONFIG_DIR":     "/var/tasks",
		"RUNNER_TOLERANCE":      "45m",
		"RUNNER_MAX_RETRIES":    "5",
		"RUNNER_RETRY_DELAY":    "3s",
		"RUNNER_SWEEP_INTERVAL": "1m",

		"DISPATCH_TIMEOUT": "10s",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"DEVICE_KEYS": `["key_1","key_2"]`,
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/var/tasks", cfg.Runner.ConfigDir)
	assert.Equal(t, 45*time.Minute, cfg.Runner.Tolerance)
	assert.Equal(t, 5, cfg.Runner.MaxRetries)
	assert.Equal(t, 3*time.Second, cfg.Runner.RetryDelay)
	assert.Equal(t, time.Minute, cfg.Runner.SweepInterval)

	assert.Equal(t, 10*time.Second, cfg.Dispatch.Timeout)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, `["key_1","key_2"]`, cfg.Secrets.DeviceKeys)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"RUNNER_CONFIG_DIR": "/var/tasks",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/var/tasks", cfg.Runner.ConfigDir)
	assert.Zero(t, cfg.Runner.Tolerance)
	assert.Zero(t, cfg.Runner.MaxRetries)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Secrets.DeviceKeys)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"RUNNER_TOLERANCE": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
