package models

// SweepReport summarizes one pass over the config directory.
type SweepReport struct {
	// Scanned is the number of config files found.
	Scanned int `json:"scanned"`

	// Fired is the number of tasks whose webhook was dispatched
	// successfully (2xx).
	Fired int `json:"fired"`

	// Skipped counts tasks left untouched: already executed, not yet due,
	// expired, or missing a trigger time.
	Skipped int `json:"skipped"`

	// Failed counts tasks that could not be read, dispatched, or saved.
	Failed int `json:"failed"`

	// Changed reports whether any config file was written back.
	Changed bool `json:"changed"`
}
