// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ad board server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" member of HTTP response bodies. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON"

	// MsgInvalidID is returned when the {id} path segment overflows int64.
	MsgInvalidID = "invalid id"

	// MsgBodyTooLarge is returned when the request body exceeds the limit.
	MsgBodyTooLarge = "request body too large"

	// MsgValidationError is returned for a schema violation that carries no
	// field list, such as a PATCH without any known field.
	MsgValidationError = "Validation error"

	// MsgEmptyCredentials is returned when the email or password header is
	// missing on a protected route.
	MsgEmptyCredentials = "Empty email or password"

	// MsgInvalidCredentials is returned for an unknown email and a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgNotOwner is returned when the caller tries to change an
	// advertisement they do not own.
	MsgNotOwner = "Can not manipulate with this advertisment"

	MsgUserNotFound          = "User not found"
	MsgAdvertisementNotFound = "Advertisment not found"

	// MsgEmailAlreadyExists is returned when registering a taken email.
	MsgEmailAlreadyExists = "User with this email already exists"

	// MsgDatabaseUnavailable is returned by the health check.
	MsgDatabaseUnavailable = "database is unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	MsgNotFound = "Not Found"
)
