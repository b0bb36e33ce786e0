// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dynamic implements the value bridge between JSON text, an
// in-memory tagged-union [Value] tree, and native Go values.
//
// The package offers three independent, composable conversions:
//
//   - JSON text -> [Value] via [Parse] / [ParseString]
//   - [Value] -> JSON text via [EncodePretty] / [EncodeCompact]
//   - Go values <-> [Value] via [FromHost] and [Value.Host]
//
// A Value produced by any of these conversions round-trips through JSON
// serialization without semantic loss: the integer/float distinction of
// numeric literals is kept verbatim, and object keys keep their insertion
// order through any subsequent re-serialization.
package dynamic
