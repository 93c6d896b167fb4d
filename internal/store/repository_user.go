// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/models"
)

var usersTable = table[models.User]{
	name:       models.User{}.TableName(),
	columns:    []string{"id", "name", "email", "password", "created_at"},
	attributes: []string{"id", "email"},
	mutable:    []string{"name", "email", "password"},
	scan:       scanUser,
	notFound:   ErrUserNotFound,
	conflict:   ErrEmailAlreadyExists,
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		createdAt timestamp
	)
	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.Password, &createdAt); err != nil {
		return models.User{}, err
	}
	user.CreatedAt = createdAt.Time
	return user, nil
}

// userRepository is the SQL-backed implementation of [UserRepository]
// over the "users" table.
type userRepository struct {
	users  *tableRepository[models.User]
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  newTableRepository(db, usersTable),
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with the server-assigned
// id and creation time. A taken email yields [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	created, err := r.users.create(ctx, user.Fields())
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}
	return created, nil
}

// FindUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findBy(ctx, "id", id)
}

// FindUserByEmail returns the user with the given email or [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *userRepository) findBy(ctx context.Context, attr string, value any) (models.User, error) {
	user, found, err := r.users.getByAttribute(ctx, attr, value)
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user by %s: %w", attr, err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser sets fields on the user in a single conditional statement.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, fields map[string]any) (models.User, error) {
	updated, err := r.users.update(ctx, sq.Eq{"id": id}, fields)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user %d: %w", id, err)
	}
	return updated, nil
}

// DeleteUser removes the user. Their advertisements are removed by the
// ON DELETE CASCADE foreign key.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	deleted, err := r.users.delete(ctx, sq.Eq{"id": id})
	if err != nil {
		return models.User{}, fmt.Errorf("error deleting user %d: %w", id, err)
	}
	return deleted, nil
}
