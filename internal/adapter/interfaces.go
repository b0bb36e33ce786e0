package adapter

import (
	"context"

	"github.com/MKhiriev/taskio/models"
)

// Dispatcher sends one HTTP request per call and holds no state between
// calls. The configured timeout is the only cancellation mechanism besides
// ctx itself.
type Dispatcher interface {
	// Send builds and issues the request described by spec and returns the
	// response status code and body text. 4xx/5xx responses are not errors.
	// Fails with [ErrUnsupportedMethod], [ErrNestedQueryValue], or
	// [ErrPayloadNotObject] before any network activity, and with
	// [*NetworkError] on transport failure or timeout.
	Send(ctx context.Context, spec models.RequestSpec) (models.Result, error)
}
