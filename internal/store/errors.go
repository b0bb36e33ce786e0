// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "fmt"

// IOError reports a filesystem read or write failure. Op is "read" or
// "write", Path is the offending file, and Err is the underlying os error,
// so [errors.Is] still matches fs.ErrNotExist and fs.ErrPermission through
// it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s config %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
