package store

import (
	"github.com/MKhiriev/taskio/internal/dynamic"
)

// ConfigStore reads and writes JSON config files and discovers them on disk.
type ConfigStore interface {
	// ListConfigs returns the paths of every *.json file directly under dir,
	// sorted lexicographically. Discovery failures (missing or unreadable
	// directory) yield an empty slice, never an error, so "no configs" is
	// uniform for callers.
	ListConfigs(dir string) []string

	// ReadConfig loads the whole file at path and parses it into a dynamic
	// value. Fails with [*IOError] when the file cannot be read and with
	// [*dynamic.ParseError] when its content is not valid JSON.
	ReadConfig(path string) (dynamic.Value, error)

	// SaveConfig converts value (a [dynamic.Value] or any convertible host
	// value) and writes it to path pretty-printed, overwriting the existing
	// file. Fails with [*dynamic.ConversionError] before any I/O when the
	// value is not representable, and with [*IOError] on write failure.
	SaveConfig(path string, value any) error
}
