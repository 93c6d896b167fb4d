// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Advertisement is a listing published by a user.
type Advertisement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Advertisement model.
func (a Advertisement) TableName() string {
	return "advertisements"
}

// AdvertisementCreate is the body of POST /advertisment.
// The owner is taken from the authenticated user, never from the body.
type AdvertisementCreate struct {
	Title       string `json:"title" validate:"required,min=5,max=70"`
	Description string `json:"description" validate:"required,min=10,max=500"`
}

// Fields returns the column values to be inserted for the given owner.
func (a AdvertisementCreate) Fields(ownerID int64) map[string]any {
	return map[string]any{
		"title":       a.Title,
		"description": a.Description,
		"owner_id":    ownerID,
	}
}

// AdvertisementPatch is the body of PATCH /advertisment/{id}.
type AdvertisementPatch struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,min=5,max=70"`
	Description *string `json:"description,omitempty" validate:"omitnil,min=10,max=500"`
}

// Fields returns only the columns present in the patch.
func (a AdvertisementPatch) Fields() map[string]any {
	fields := make(map[string]any, 2)
	if a.Title != nil {
		fields["title"] = *a.Title
	}
	if a.Description != nil {
		fields["description"] = *a.Description
	}
	return fields
}

// AdvertisementDeleted acknowledges DELETE /advertisment/{id}.
type AdvertisementDeleted struct {
	ID int64 `json:"advertisment"`
}
