// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

// Package validators provides input validation for request bodies decoded
// by the transport layer.
//
// Rules are declared with `validate` struct tags on the request models and
// enforced by go-playground/validator. Callers may restrict validation to a
// subset of fields by naming them in the Go struct field form
// ("Username", "Password").
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
