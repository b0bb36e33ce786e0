package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_DefaultsFillUnsetFields(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	// Act
	cfg, err := b.withDefaults().build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "configs", cfg.Runner.ConfigDir)
	assert.Equal(t, 30*time.Minute, cfg.Runner.Tolerance)
	assert.Equal(t, 3, cfg.Runner.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Runner.RetryDelay)
	assert.Equal(t, 20*time.Second, cfg.Dispatch.Timeout)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	// Arrange: the first config plays the env role, the second the flag role.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Runner: Runner{ConfigDir: "/from/env"}},
		&StructuredConfig{Runner: Runner{ConfigDir: "/from/flags", MaxRetries: 7}},
	)

	// Act
	cfg, err := b.withDefaults().build()

	// Assert: non-zero fields of earlier sources are kept.
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Runner.ConfigDir)
	assert.Equal(t, 7, cfg.Runner.MaxRetries)
}

func TestConfigBuilder_ValidationFailure(t *testing.T) {
	// Arrange: an explicit negative retry delay survives the merge and must
	// be rejected.
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Runner: Runner{RetryDelay: -time.Second},
	})

	// Act
	_, err := b.withDefaults().build()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRunnerConfigs)
}

func TestValidate_DispatchTimeout(t *testing.T) {
	// Arrange
	cfg := defaults()
	cfg.Dispatch.Timeout = 0

	// Act
	err := cfg.validate()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDispatchConfigs)
}
