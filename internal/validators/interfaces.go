// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides declarative validation of inbound request
// bodies.
//
// Every accepted body type (user and advertisement, create and patch) is a
// schema: a struct whose `validate` tags describe the field rules. Validation
// performs no I/O and reports all violated fields at once.
package validators

import "context"

// Validator defines a generic validation interface for request bodies.
type Validator interface {
	// Validate checks obj against its schema. It returns a *ValidationError
	// listing every violated field, [ErrNothingToUpdate] for an empty
	// partial update, or [ErrUnsupportedType] when obj has no schema.
	Validate(ctx context.Context, obj any) error
}
