// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-ad-board/internal/config"
	myHTTP "github.com/MKhiriev/go-ad-board/internal/handler/http"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/service"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/models"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientConfig{ServerURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// newBoardServer serves the real router over an in-memory SQLite database.
func newBoardServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.Nop()

	storages, err := store.NewStorages(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, config.App{BcryptCost: bcrypt.MinCost, Version: "v0.1.0"}, log)
	require.NoError(t, err)

	srv := httptest.NewServer(myHTTP.NewHandler(services, config.Server{}, log).Init())
	t.Cleanup(srv.Close)
	return srv
}

func strPtr(s string) *string { return &s }

func TestAdapter_AgainstServer(t *testing.T) {
	srv := newBoardServer(t)
	ctx := context.Background()
	a := newTestAdapter(t, srv.URL)

	require.NoError(t, a.Ping(ctx))
	version, err := a.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v0.1.0", version)

	user, err := a.CreateUser(ctx, models.UserCreate{Name: "Alice", Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotZero(t, user.UserID)

	_, err = a.CreateUser(ctx, models.UserCreate{Name: "Alice", Email: "alice@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = a.CreateUser(ctx, models.UserCreate{Name: "Bob", Email: "bob@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorContains(t, err, "password: Too easy password")

	got, err := a.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = a.CreateAdvertisement(ctx, models.AdvertisementCreate{Title: "Bike for sale", Description: "Red, almost new"})
	assert.ErrorIs(t, err, ErrBadRequest)

	a.SetCredentials("alice@example.com", "wr0ngpass")
	_, err = a.CreateAdvertisement(ctx, models.AdvertisementCreate{Title: "Bike for sale", Description: "Red, almost new"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	a.SetCredentials("alice@example.com", "s3cretpass")
	adv, err := a.CreateAdvertisement(ctx, models.AdvertisementCreate{Title: "Bike for sale", Description: "Red, almost new"})
	require.NoError(t, err)
	assert.Equal(t, user.UserID, adv.OwnerID)

	patch, err := a.UpdateAdvertisement(ctx, adv.ID, models.AdvertisementPatch{Title: strPtr("Road bike")})
	require.NoError(t, err)
	require.NotNil(t, patch.Title)
	assert.Equal(t, "Road bike", *patch.Title)

	fetched, err := a.GetAdvertisement(ctx, adv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Road bike", fetched.Title)

	deleted, err := a.DeleteAdvertisement(ctx, adv.ID)
	require.NoError(t, err)
	assert.Equal(t, adv.ID, deleted.ID)

	_, err = a.GetAdvertisement(ctx, adv.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "Advertisment not found")

	userPatch, err := a.UpdateUser(ctx, user.UserID, models.UserPatch{Name: strPtr("Alicia")})
	require.NoError(t, err)
	require.NotNil(t, userPatch.Name)
	assert.Equal(t, "Alicia", *userPatch.Name)

	removed, err := a.DeleteUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", removed.Name)
}

func TestAdapter_ForeignAdvertisement(t *testing.T) {
	srv := newBoardServer(t)
	ctx := context.Background()
	alice := newTestAdapter(t, srv.URL)
	bob := newTestAdapter(t, srv.URL)

	_, err := alice.CreateUser(ctx, models.UserCreate{Name: "Alice", Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	_, err = bob.CreateUser(ctx, models.UserCreate{Name: "Bob", Email: "bob@example.com", Password: "an0therpass"})
	require.NoError(t, err)

	alice.SetCredentials("alice@example.com", "s3cretpass")
	bob.SetCredentials("bob@example.com", "an0therpass")

	adv, err := alice.CreateAdvertisement(ctx, models.AdvertisementCreate{Title: "Bike for sale", Description: "Red, almost new"})
	require.NoError(t, err)

	_, err = bob.UpdateAdvertisement(ctx, adv.ID, models.AdvertisementPatch{Title: strPtr("Hijacked")})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = bob.DeleteAdvertisement(ctx, adv.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdapter_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
	}{
		{http.StatusInternalServerError, `{"error":"internal server error"}`, ErrInternalServerError},
		{http.StatusServiceUnavailable, `{"error":"database is unavailable"}`, ErrServiceUnavailable},
		{http.StatusRequestEntityTooLarge, `{"error":"request body too large"}`, ErrPayloadTooLarge},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Ping(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdapter_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418: I'm a teapot")
}

func TestAdapter_SendsCredentialHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/advertisment/7", r.URL.Path)
		assert.Equal(t, "alice@example.com", r.Header.Get("email"))
		assert.Equal(t, "s3cretpass", r.Header.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"advertisment":7}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCredentials(" alice@example.com ", "s3cretpass")

	deleted, err := a.DeleteAdvertisement(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted.ID)
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errEmptyAddress)
}
