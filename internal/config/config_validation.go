package config

import "fmt"

// validate checks the merged configuration for values the application cannot
// run with. Defaults have already been merged in, so any violation here is an
// explicit misconfiguration.
func (c *StructuredConfig) validate() error {
	if c.Runner.ConfigDir == "" {
		return fmt.Errorf("%w: config directory is empty", ErrInvalidRunnerConfigs)
	}
	if c.Runner.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive", ErrInvalidRunnerConfigs)
	}
	if c.Runner.MaxRetries < 1 {
		return fmt.Errorf("%w: max retries must be at least 1", ErrInvalidRunnerConfigs)
	}
	if c.Runner.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay cannot be negative", ErrInvalidRunnerConfigs)
	}
	if c.Dispatch.Timeout <= 0 {
		return fmt.Errorf("%w: dispatch timeout must be positive", ErrInvalidDispatchConfigs)
	}

	return nil
}
