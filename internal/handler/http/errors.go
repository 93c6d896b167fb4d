// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded into
	// the expected schema.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrInvalidID is reported when the {id} path parameter does not fit
	// into an int64.
	ErrInvalidID = errors.New("invalid id")

	// ErrBodyTooLarge is reported when a request body exceeds the configured
	// limit.
	ErrBodyTooLarge = errors.New("request body too large")

	errNoUserInContext = errors.New("no authenticated user in request context")
)
