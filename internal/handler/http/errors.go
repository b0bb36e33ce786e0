// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidConfigName is returned when a {name} route parameter is empty or
// tries to escape the config directory.
var ErrInvalidConfigName = errors.New("invalid config name")
