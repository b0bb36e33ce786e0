// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedMethod is returned when the request method is outside
	// GET/POST/PUT/DELETE. The request is rejected before any network
	// activity.
	ErrUnsupportedMethod = errors.New("unsupported http method")

	// ErrNestedQueryValue is returned when a GET payload carries an object
	// or array value, which has no defined query-parameter form. The
	// request is rejected before any network activity.
	ErrNestedQueryValue = errors.New("nested payload value cannot be a query parameter")

	// ErrPayloadNotObject is returned when a non-object, non-null payload is
	// given to a GET request.
	ErrPayloadNotObject = errors.New("get payload must be a json object")

	// ErrNetwork is the base cause of every [*NetworkError]; match it with
	// [errors.Is].
	ErrNetwork = errors.New("network failure")
)

// NetworkError reports a transport-level fault: DNS, connection refused, TLS
// failure, or the request timeout elapsing. URL names the attempted target
// and Err carries the transport's own message.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNetwork) match any NetworkError.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
