// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrMissingCredentials is returned when the email or password header is
	// absent or empty.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAdvertisementOwner is returned when the authenticated user tries
	// to change an advertisement owned by someone else.
	ErrNotAdvertisementOwner = errors.New("not the owner of the advertisement")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
