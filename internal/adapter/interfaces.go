// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the ad board REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI from
// the underlying protocol. Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ad-board/models"
)

// ServerAdapter defines communication with the ad board server.
type ServerAdapter interface {
	// SetCredentials stores the email and password sent as headers with
	// every advertisement mutation.
	SetCredentials(email, password string)

	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.UserPatch, error)
	DeleteUser(ctx context.Context, id int64) (models.User, error)

	CreateAdvertisement(ctx context.Context, adv models.AdvertisementCreate) (models.Advertisement, error)
	GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error)
	UpdateAdvertisement(ctx context.Context, id int64, patch models.AdvertisementPatch) (models.AdvertisementPatch, error)
	DeleteAdvertisement(ctx context.Context, id int64) (models.AdvertisementDeleted, error)

	// Ping checks that the server and its database are reachable.
	Ping(ctx context.Context) error
	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
