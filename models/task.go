package models

import (
	"github.com/MKhiriev/taskio/internal/dynamic"
)

// Well-known task config keys. Task files are free-form JSON; these are the
// keys the runner interprets. Everything else is carried through untouched.
const (
	TaskKeyTriggerTime = "trigger_time"
	TaskKeyTimezone    = "timezone"
	TaskKeyWebhookURL  = "webhook_url"
	TaskKeyMethod      = "method"
	TaskKeyBody        = "body"
	TaskKeyDeviceKeys  = "device_keys"
	TaskKeyExecuted    = "executed"
	TaskKeyExecutedAt  = "executed_at"
)

// TimeLayout is the wall-clock format of trigger_time and executed_at.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultTimezone is assumed when a task carries no timezone key.
const DefaultTimezone = "Asia/Shanghai"

// DefaultMethod is assumed when a task carries no method key.
const DefaultMethod = "POST"

// Task is a typed view over a task config file's dynamic value. It reads
// and writes the well-known keys in place, so unknown keys and the file's
// key order survive a read-modify-save cycle.
//
// The zero Task is not usable; construct one with [TaskFromValue].
type Task struct {
	value dynamic.Value
}

// TaskFromValue wraps v in a Task view. It returns ok=false when v is not a
// JSON object, which the runner treats as a malformed task file.
func TaskFromValue(v dynamic.Value) (Task, bool) {
	if v.Kind() != dynamic.KindObject {
		return Task{}, false
	}
	return Task{value: v}, true
}

// Value returns the underlying dynamic value, mutations included.
func (t Task) Value() dynamic.Value {
	return t.value
}

// Executed reports whether the task is marked as already executed.
func (t Task) Executed() bool {
	v, ok := t.value.Object().Get(TaskKeyExecuted)
	return ok && v.Bool()
}

// TriggerTime returns the raw trigger_time string, "" if absent.
func (t Task) TriggerTime() string {
	v, _ := t.value.Object().Get(TaskKeyTriggerTime)
	return v.Str()
}

// Timezone returns the task's IANA zone name, falling back to
// [DefaultTimezone] when the key is absent or empty.
func (t Task) Timezone() string {
	v, _ := t.value.Object().Get(TaskKeyTimezone)
	if zone := v.Str(); zone != "" {
		return zone
	}
	return DefaultTimezone
}

// WebhookURL returns the target URL, "" if absent.
func (t Task) WebhookURL() string {
	v, _ := t.value.Object().Get(TaskKeyWebhookURL)
	return v.Str()
}

// Method returns the HTTP verb for the webhook call, falling back to
// [DefaultMethod] when the key is absent or empty.
func (t Task) Method() string {
	v, _ := t.value.Object().Get(TaskKeyMethod)
	if m := v.Str(); m != "" {
		return m
	}
	return DefaultMethod
}

// Body returns a deep copy of the task's body object, or an empty object
// when the key is absent. The copy keeps injected secrets out of the file:
// the runner mutates the copy, never the stored body.
func (t Task) Body() dynamic.Value {
	v, ok := t.value.Object().Get(TaskKeyBody)
	if !ok || v.Kind() != dynamic.KindObject {
		return dynamic.ObjectValue(dynamic.NewObject())
	}
	return v.Clone()
}

// MarkExecuted flags the task as executed at the given formatted timestamp.
// The mutation goes through to the underlying value so that a subsequent
// save persists it.
func (t Task) MarkExecuted(at string) {
	t.value.Object().Set(TaskKeyExecuted, dynamic.Bool(true))
	t.value.Object().Set(TaskKeyExecutedAt, dynamic.String(at))
}
