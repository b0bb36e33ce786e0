// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/taskio/internal/logger"
	"github.com/MKhiriev/taskio/models"
)

// triggerState classifies a task's position relative to its trigger window.
type triggerState int

const (
	// triggerPending means the trigger time has not arrived yet.
	triggerPending triggerState = iota

	// triggerOpen means now is within [trigger, trigger+tolerance] and the
	// task should fire.
	triggerOpen

	// triggerExpired means the window has closed; the task is never fired.
	triggerExpired
)

func (s triggerState) String() string {
	switch s {
	case triggerPending:
		return "pending"
	case triggerOpen:
		return "open"
	case triggerExpired:
		return "expired"
	default:
		return "invalid"
	}
}

// resolveLocation loads the task's IANA zone. An unknown zone name falls
// back to UTC instead of failing the task.
func resolveLocation(zone string, log *logger.Logger) *time.Location {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Warn().Str("timezone", zone).Msg("unknown timezone, falling back to UTC")
		return time.UTC
	}
	return loc
}

// triggerWindow parses triggerTime as wall-clock time in loc and classifies
// it against now. The returned duration is now minus trigger (negative while
// pending).
func triggerWindow(triggerTime string, loc *time.Location, tolerance time.Duration, now time.Time) (triggerState, time.Duration, error) {
	trigger, err := time.ParseInLocation(models.TimeLayout, triggerTime, loc)
	if err != nil {
		return triggerPending, 0, fmt.Errorf("malformed trigger time %q: %w", triggerTime, err)
	}

	diff := now.Sub(trigger)
	switch {
	case diff < 0:
		return triggerPending, diff, nil
	case diff <= tolerance:
		return triggerOpen, diff, nil
	default:
		return triggerExpired, diff, nil
	}
}
