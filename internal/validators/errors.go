// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedType is returned by Validate for values that have no schema.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is the root of every validation failure. Match it with
	// [errors.Is] to detect input that was rejected by a schema.
	ErrValidation = errors.New("validation error")

	// ErrNothingToUpdate is returned when a partial update carries no
	// recognised field after filtering.
	ErrNothingToUpdate = fmt.Errorf("%w: nothing to update", ErrValidation)
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that violated its schema rule.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Unwrap makes every *ValidationError match [ErrValidation].
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
