// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound payloads before they reach the
// services: credentials, password resets, and store and item names.
//
// A Validator may be asked to check only some fields of a value; the
// field names are the Field* constants of this package.
package validators

import "context"

// Validator checks a value. With no field names every rule for the value's
// type applies; otherwise only the named ones. Unsupported types yield
// ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
