// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/models"
)

type userService struct {
	userRepository store.UserRepository
	auth           AuthService
	logger         *logger.Logger
}

// NewUserService constructs a UserService. Passwords are hashed with auth
// before they reach the repository.
func NewUserService(userRepository store.UserRepository, auth AuthService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		auth:           auth,
		logger:         logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := s.auth.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}
	user.Password = hash

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// UpdateUser applies the present fields of patch in one conditional
// statement. A missing user yields store.ErrUserNotFound.
func (s *userService) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.UserPatch, error) {
	log := logger.FromContext(ctx)

	fields := patch.Fields()
	if patch.Password != nil {
		hash, err := s.auth.HashPassword(*patch.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.UserPatch{}, err
		}
		fields["password"] = hash
	}

	if _, err := s.userRepository.UpdateUser(ctx, id, fields); err != nil {
		log.Err(err).Int64("user_id", id).Msg("user update ended with error")
		return models.UserPatch{}, fmt.Errorf("update user %d: %w", id, err)
	}

	return patch.WithoutPassword(), nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	deleted, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", id).Msg("user deletion ended with error")
		return models.User{}, fmt.Errorf("delete user %d: %w", id, err)
	}
	return deleted, nil
}
