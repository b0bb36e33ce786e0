// Package service implements the time-triggered task sweep: it walks the
// config directory, fires webhooks for tasks whose trigger window is open,
// and marks fired tasks as executed in their files.
//
// Per-task failures (unreadable file, malformed JSON, failed dispatch) are
// logged and counted but never abort the sweep; the remaining tasks are
// still processed, mirroring an unattended scheduled run.
package service
