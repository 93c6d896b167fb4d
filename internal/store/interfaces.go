// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-ad-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Passwords are expected to be hashed
// by the caller.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdateUser sets the given columns and returns the updated row.
	UpdateUser(ctx context.Context, id int64, fields map[string]any) (models.User, error)
	// DeleteUser removes the user together with their advertisements and
	// returns the removed row.
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// AdvertisementRepository persists advertisements. Every mutation is
// conditioned on the owner, so a row owned by someone else is reported as
// not found.
type AdvertisementRepository interface {
	CreateAdvertisement(ctx context.Context, ownerID int64, adv models.AdvertisementCreate) (models.Advertisement, error)
	FindAdvertisementByID(ctx context.Context, id int64) (models.Advertisement, error)
	UpdateAdvertisement(ctx context.Context, id, ownerID int64, fields map[string]any) (models.Advertisement, error)
	DeleteAdvertisement(ctx context.Context, id, ownerID int64) (models.Advertisement, error)
	// CheckOwnership reports whether userID owns the advertisement advID.
	CheckOwnership(ctx context.Context, userID, advID int64) (bool, error)
}

// ErrorClassificator maps driver errors to [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
