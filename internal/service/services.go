// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the ad board: credential
// checks, password hashing, ownership gates and request validation.
package service

import (
	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/internal/validators"
)

type Services struct {
	AuthService          AuthService
	UserService          UserService
	AdvertisementService AdvertisementService
	AppInfoService       AppInfoService
	HealthService        HealthService
}

// NewServices wires every service over storages. User and advertisement
// services are wrapped with schema validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewSchemaValidator()
	auth := NewAuthService(storages.UserRepository, cfg, logger)

	return &Services{
		AuthService: auth,
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, auth, logger)),
		AdvertisementService: NewAdvertisementValidationService(validator).
			Wrap(NewAdvertisementService(storages.AdvertisementRepository, logger)),
		AppInfoService: appInfo,
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
