// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ad-board/models"
)

// AuthService verifies header credentials and hashes passwords.
type AuthService interface {
	// Authenticate returns the user whose email and password match.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	// HashPassword returns a salted bcrypt hash of password.
	HashPassword(password string) (string, error)
}

// UserService implements the user resource.
type UserService interface {
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	// UpdateUser applies patch and returns the updated fields without the password.
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.UserPatch, error)
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// AdvertisementService implements the advertisement resource. Mutations
// require the authenticated user to be the owner.
type AdvertisementService interface {
	CreateAdvertisement(ctx context.Context, owner models.User, adv models.AdvertisementCreate) (models.Advertisement, error)
	GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error)
	UpdateAdvertisement(ctx context.Context, user models.User, id int64, patch models.AdvertisementPatch) (models.AdvertisementPatch, error)
	DeleteAdvertisement(ctx context.Context, user models.User, id int64) (models.AdvertisementDeleted, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the backing database is reachable.
type HealthService interface {
	Ping(ctx context.Context) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// AdvertisementServiceWrapper defines middleware composition for
// AdvertisementService.
type AdvertisementServiceWrapper interface {
	Wrap(AdvertisementService) AdvertisementService
}
