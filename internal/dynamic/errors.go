// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dynamic

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by [ConversionError]. Callers should match them
// with [errors.Is].
var (
	// ErrUnsupportedType is returned when a host value's type has no
	// JSON-representable equivalent (channels, funcs, structs, and so on).
	ErrUnsupportedType = errors.New("host type is not representable as json")

	// ErrNonStringKey is returned when a host map is keyed by anything other
	// than strings.
	ErrNonStringKey = errors.New("map key is not a string")

	// ErrCycle is returned when a host value graph references itself.
	// Cycles are detected and rejected instead of recursing forever.
	ErrCycle = errors.New("cycle detected in host value")

	// ErrTrailingData is returned by [Parse] when well-formed JSON is
	// followed by anything other than whitespace.
	ErrTrailingData = errors.New("trailing data after json value")
)

// ParseError reports malformed JSON text. Source identifies where the text
// came from (a file path or operation name) and Err carries the underlying
// parser diagnostic.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConversionError reports a host value that cannot be losslessly represented
// as a [Value]. Path locates the offending element inside the host value
// graph (for example "$.tasks[2].owner") and Err is one of the sentinel
// causes above.
type ConversionError struct {
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
