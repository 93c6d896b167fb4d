// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns advertisements.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the server-generated unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user. Letters only.
	Name string `json:"name"`

	// Email is the unique address used as the login in the `email` header.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized, neither in plain nor in hashed form.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserCreate is the body of POST /user.
type UserCreate struct {
	Name     string `json:"name" validate:"required,person_name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password_policy"`
}

// Fields returns the column values to be inserted.
func (u UserCreate) Fields() map[string]any {
	return map[string]any{
		"name":     u.Name,
		"email":    u.Email,
		"password": u.Password,
	}
}

// UserPatch is the body of PATCH /user/{id}.
// A nil field was not sent by the client and is left untouched.
type UserPatch struct {
	Name     *string `json:"name,omitempty" validate:"omitnil,person_name"`
	Password *string `json:"password,omitempty" validate:"omitnil,password_policy"`
}

// Fields returns only the columns present in the patch.
func (u UserPatch) Fields() map[string]any {
	fields := make(map[string]any, 2)
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Password != nil {
		fields["password"] = *u.Password
	}
	return fields
}

// WithoutPassword returns a copy of the patch that is safe to echo back.
func (u UserPatch) WithoutPassword() UserPatch {
	u.Password = nil
	return u
}
