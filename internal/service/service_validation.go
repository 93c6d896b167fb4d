// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ad-board/internal/validators"
	"github.com/MKhiriev/go-ad-board/models"
)

// UserValidationService validates request bodies before they reach the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}
	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.UserPatch, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.UserPatch{}, fmt.Errorf("error during user validation before updating: %w", err)
	}
	return v.inner.UpdateUser(ctx, id, patch)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// AdvertisementValidationService validates request bodies before they reach
// the wrapped AdvertisementService.
type AdvertisementValidationService struct {
	inner     AdvertisementService
	validator validators.Validator
}

func NewAdvertisementValidationService(validator validators.Validator) AdvertisementServiceWrapper {
	return &AdvertisementValidationService{validator: validator}
}

func (v *AdvertisementValidationService) CreateAdvertisement(ctx context.Context, owner models.User, adv models.AdvertisementCreate) (models.Advertisement, error) {
	if err := v.validator.Validate(ctx, adv); err != nil {
		return models.Advertisement{}, fmt.Errorf("error during advertisement validation before saving: %w", err)
	}
	return v.inner.CreateAdvertisement(ctx, owner, adv)
}

func (v *AdvertisementValidationService) GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error) {
	return v.inner.GetAdvertisement(ctx, id)
}

func (v *AdvertisementValidationService) UpdateAdvertisement(ctx context.Context, user models.User, id int64, patch models.AdvertisementPatch) (models.AdvertisementPatch, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.AdvertisementPatch{}, fmt.Errorf("error during advertisement validation before updating: %w", err)
	}
	return v.inner.UpdateAdvertisement(ctx, user, id, patch)
}

func (v *AdvertisementValidationService) DeleteAdvertisement(ctx context.Context, user models.User, id int64) (models.AdvertisementDeleted, error) {
	return v.inner.DeleteAdvertisement(ctx, user, id)
}

func (v *AdvertisementValidationService) Wrap(wrapped AdvertisementService) AdvertisementService {
	v.inner = wrapped
	return v
}
