package models

import (
	"time"

	"github.com/MKhiriev/taskio/internal/dynamic"
)

// RequestSpec describes one outbound HTTP call. It is constructed per
// dispatch and never persisted.
type RequestSpec struct {
	// Method is the HTTP verb, case-insensitive. Only GET, POST, PUT, and
	// DELETE are dispatchable; anything else is rejected before any network
	// activity.
	Method string `json:"method"`

	// URL is the absolute target URL.
	URL string `json:"url"`

	// Payload is the request payload. For GET it is flattened into query
	// parameters; for the write verbs it is serialized as a compact JSON
	// body. A null payload means "no payload".
	Payload dynamic.Value `json:"payload,omitempty"`

	// Timeout bounds the whole request/response cycle (connect, write,
	// read). A zero or negative timeout means no limit beyond the
	// transport's own.
	Timeout time.Duration `json:"-"`
}

// Result is the outcome of a completed HTTP exchange. 4xx/5xx responses are
// results, not errors.
type Result struct {
	// StatusCode is the numeric HTTP status (0–65535).
	StatusCode int `json:"status_code"`

	// Body is the response body as text. A body that is not decodable as
	// text degrades to "" so that it can never mask the status code.
	Body string `json:"body"`
}

// OK reports whether the status code is in the 2xx range.
func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
