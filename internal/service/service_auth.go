// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/internal/utils"
	"github.com/MKhiriev/go-ad-board/models"
)

// authService is the concrete implementation of AuthService.
// It looks users up through a UserRepository and compares bcrypt hashes.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor of newly created hashes.
	bcryptCost int

	// dummyHash is compared against when the email is unknown, so that path
	// costs as much as a wrong password. Built on first use at bcryptCost.
	dummyHash func() string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	a := &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
	a.dummyHash = sync.OnceValue(func() string {
		hash, err := utils.HashPassword("dummy-password-0", a.bcryptCost)
		if err != nil {
			logger.Err(err).Msg("dummy hash creation failed")
		}
		return hash
	})
	return a
}

// Authenticate verifies the email and password taken from request headers.
//
// Returns the stored user or:
//   - ErrMissingCredentials if either value is empty.
//   - ErrInvalidCredentials if no user has the email or the password does
//     not match. A bcrypt comparison runs in both cases.
//   - A wrapped storage error if the lookup fails for another reason.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = utils.CheckPassword(a.dummyHash(), password)
		log.Debug().Str("email", email).Msg("authentication failed: unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(user.Password, password) {
		log.Debug().Int64("user_id", user.UserID).Msg("authentication failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// HashPassword hashes password with the configured bcrypt cost.
func (a *authService) HashPassword(password string) (string, error) {
	return utils.HashPassword(password, a.bcryptCost)
}
