// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/taskio/internal/dynamic"
	"github.com/MKhiriev/taskio/internal/logger"
)

const configFilePerm = 0o644

type configStore struct {
	logger *logger.Logger
}

// NewConfigStore constructs the default filesystem-backed [ConfigStore].
func NewConfigStore(logger *logger.Logger) ConfigStore {
	return &configStore{logger: logger}
}

// ListConfigs implements [ConfigStore]. Failures are swallowed into an empty
// slice, but logged at debug level so an operator can tell an absent
// directory from an unreadable one.
func (s *configStore) ListConfigs(dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		s.logger.Debug().Err(err).Str("dir", dir).Msg("config discovery failed")
		return []string{}
	}
	if matches == nil {
		matches = []string{}
	}

	// Glob already sorts, but the ordering contract is ours, not Glob's.
	sort.Strings(matches)

	return matches
}

// ReadConfig implements [ConfigStore].
func (s *configStore) ReadConfig(path string) (dynamic.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dynamic.Value{}, &IOError{Op: "read", Path: path, Err: err}
	}

	value, err := dynamic.Parse(bytes.NewReader(data), path)
	if err != nil {
		return dynamic.Value{}, err
	}

	return value, nil
}

// SaveConfig implements [ConfigStore]. The conversion runs before any I/O so
// an unrepresentable value never truncates an existing file.
func (s *configStore) SaveConfig(path string, value any) error {
	converted, err := dynamic.FromHost(value)
	if err != nil {
		return err
	}

	text, err := dynamic.EncodePretty(converted)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(text), configFilePerm); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	return nil
}
