// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/service"
	"github.com/MKhiriev/go-ad-board/models"
)

// ---- Fakes: services ----

type fakeAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (models.User, error)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	if f.authenticateFn != nil {
		return f.authenticateFn(ctx, email, password)
	}
	return models.User{}, service.ErrInvalidCredentials
}
func (f *fakeAuthService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

type fakeUserService struct {
	createFn func(ctx context.Context, user models.UserCreate) (models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	updateFn func(ctx context.Context, id int64, patch models.UserPatch) (models.UserPatch, error)
	deleteFn func(ctx context.Context, id int64) (models.User, error)
}

func (f *fakeUserService) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	return f.createFn(ctx, user)
}
func (f *fakeUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return f.getFn(ctx, id)
}
func (f *fakeUserService) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.UserPatch, error) {
	return f.updateFn(ctx, id, patch)
}
func (f *fakeUserService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	return f.deleteFn(ctx, id)
}

type fakeAdvertisementService struct {
	createFn func(ctx context.Context, owner models.User, adv models.AdvertisementCreate) (models.Advertisement, error)
	getFn    func(ctx context.Context, id int64) (models.Advertisement, error)
	updateFn func(ctx context.Context, user models.User, id int64, patch models.AdvertisementPatch) (models.AdvertisementPatch, error)
	deleteFn func(ctx context.Context, user models.User, id int64) (models.AdvertisementDeleted, error)
}

func (f *fakeAdvertisementService) CreateAdvertisement(ctx context.Context, owner models.User, adv models.AdvertisementCreate) (models.Advertisement, error) {
	return f.createFn(ctx, owner, adv)
}
func (f *fakeAdvertisementService) GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error) {
	return f.getFn(ctx, id)
}
func (f *fakeAdvertisementService) UpdateAdvertisement(ctx context.Context, user models.User, id int64, patch models.AdvertisementPatch) (models.AdvertisementPatch, error) {
	return f.updateFn(ctx, user, id, patch)
}
func (f *fakeAdvertisementService) DeleteAdvertisement(ctx context.Context, user models.User, id int64) (models.AdvertisementDeleted, error) {
	return f.deleteFn(ctx, user, id)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

type fakeHealthService struct {
	err error
}

func (f *fakeHealthService) Ping(_ context.Context) error {
	return f.err
}

// ---- Helpers ----

// alice is the caller the default fake authenticator accepts.
var alice = models.User{UserID: 1, Name: "Alice", Email: "alice@example.com"}

func acceptAlice(_ context.Context, email, password string) (models.User, error) {
	switch {
	case email == "" || password == "":
		return models.User{}, service.ErrMissingCredentials
	case email == alice.Email && password == "s3cretpass":
		return alice, nil
	default:
		return models.User{}, service.ErrInvalidCredentials
	}
}

// newTestHandler returns a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return NewHandler(&service.Services{}, config.Server{}, logger.Nop())
}

func newTestRouter(services *service.Services) http.Handler {
	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{authenticateFn: acceptAlice}
	}
	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}
