// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request bodies.
//
// Rules are declared with `validate` struct tags and enforced by
// go-playground/validator. Failures are reported as a [ValidationError]
// keyed by the JSON field names, ready to be sent back to the client.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
