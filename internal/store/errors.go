// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup, or when an
	// advertisement references an owner that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAdvertisementNotFound is returned when no advertisement matches the
	// lookup or the conditional update/delete affected no row.
	ErrAdvertisementNotFound = errors.New("advertisement not found")

	// ErrUnknownAttribute is returned when a lookup or a mutation names a
	// column that is not whitelisted for the table.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrNothingToUpdate is returned when an update carries no columns.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails for a reason that has no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrUnsupportedDriver is returned when the configured driver has no
	// connector.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
