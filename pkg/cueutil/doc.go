// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The package consolidates the schema-validation pattern used by the config
// loader:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and report errors with file and field context
//
// FormatError turns CUE's error lists into single messages of the form
// "<file-path>: <json-path>: <message>" so users see which config field is
// wrong without reading CUE stack traces.
package cueutil
