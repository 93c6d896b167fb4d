// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/service"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/models"
)

// newBoard wires the real store, services and router over a private
// in-memory SQLite database.
func newBoard(t *testing.T) http.Handler {
	t.Helper()
	log := logger.Nop()

	storages, err := store.NewStorages(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, config.App{BcryptCost: bcrypt.MinCost, Version: "test"}, log)
	require.NoError(t, err)

	return NewHandler(services, config.Server{}, log).Init()
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestEndToEnd_UserLifecycle(t *testing.T) {
	board := newBoard(t)

	rr := doRequest(t, board, http.MethodPost, "/user", `{"name":"Alice","email":"alice@example.com","password":"s3cretpass"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	created := decode[models.User](t, rr.Body.Bytes())
	assert.NotZero(t, created.UserID)
	assert.NotContains(t, rr.Body.String(), "password")

	rr = doRequest(t, board, http.MethodPost, "/user", `{"name":"Alice","email":"alice@example.com","password":"an0therpass"}`, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// the stored account is still the first one
	rr = doRequest(t, board, http.MethodGet, fmt.Sprintf("/user/%d", created.UserID), "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Alice", decode[models.User](t, rr.Body.Bytes()).Name)

	rr = doRequest(t, board, http.MethodPost, "/advertisment", `{"title":"Desk lamp","description":"Works fine, white"}`,
		map[string]string{emailHeader: "alice@example.com", passwordHeader: "an0therpass"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doRequest(t, board, http.MethodPost, "/advertisment", `{"title":"Desk lamp","description":"Works fine, white"}`, aliceHeaders)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, created.UserID, decode[models.Advertisement](t, rr.Body.Bytes()).OwnerID)

	rr = doRequest(t, board, http.MethodPost, "/user", `{"name":"Bob","email":"bob@example.com","password":"password123"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":[{"field":"password","message":"Too easy password"}]}`, rr.Body.String())

	userPath := fmt.Sprintf("/user/%d", created.UserID)

	rr = doRequest(t, board, http.MethodGet, userPath, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[models.User](t, rr.Body.Bytes())
	assert.Equal(t, created.Email, got.Email)

	rr = doRequest(t, board, http.MethodPatch, userPath, `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Validation error"}`, rr.Body.String())

	rr = doRequest(t, board, http.MethodPatch, userPath, `{"name":"Alicia","password":"n3wsecret"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"Alicia"}`, rr.Body.String())

	// the new password is active
	rr = doRequest(t, board, http.MethodPost, "/advertisment", `{"title":"Bike for sale","description":"Red, almost new"}`,
		map[string]string{emailHeader: "alice@example.com", passwordHeader: "n3wsecret"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, board, http.MethodDelete, userPath, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Alicia", decode[models.User](t, rr.Body.Bytes()).Name)

	rr = doRequest(t, board, http.MethodGet, userPath, "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rr.Body.String())

	rr = doRequest(t, board, http.MethodDelete, userPath, "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEndToEnd_AdvertisementOwnership(t *testing.T) {
	board := newBoard(t)

	for _, u := range []string{
		`{"name":"Alice","email":"alice@example.com","password":"s3cretpass"}`,
		`{"name":"Bob","email":"bob@example.com","password":"an0therpass"}`,
	} {
		rr := doRequest(t, board, http.MethodPost, "/user", u, nil)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}
	bob := map[string]string{emailHeader: "bob@example.com", passwordHeader: "an0therpass"}

	rr := doRequest(t, board, http.MethodPost, "/advertisment", `{"title":"Велосипед","description":"Почти новый, красный"}`, aliceHeaders)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	adv := decode[models.Advertisement](t, rr.Body.Bytes())
	assert.Contains(t, rr.Body.String(), "Велосипед")
	advPath := fmt.Sprintf("/advertisment/%d", adv.ID)

	rr = doRequest(t, board, http.MethodGet, advPath, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	fetched := decode[models.Advertisement](t, rr.Body.Bytes())
	assert.Equal(t, adv.Title, fetched.Title)
	assert.Equal(t, adv.Description, fetched.Description)
	assert.Equal(t, adv.OwnerID, fetched.OwnerID)

	rr = doRequest(t, board, http.MethodPatch, advPath, `{"title":"Hijacked title"}`, bob)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = doRequest(t, board, http.MethodGet, advPath, "", nil)
	assert.Equal(t, "Велосипед", decode[models.Advertisement](t, rr.Body.Bytes()).Title)

	rr = doRequest(t, board, http.MethodPatch, "/advertisment/999", `{"title":"Hijacked title"}`, bob)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, board, http.MethodPatch, advPath, `{"title":"ab"}`, aliceHeaders)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, board, http.MethodPatch, advPath, `{"title":"Road bike"}`, aliceHeaders)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"title":"Road bike"}`, rr.Body.String())

	rr = doRequest(t, board, http.MethodDelete, advPath, "", bob)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = doRequest(t, board, http.MethodDelete, advPath, "", aliceHeaders)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"advertisment":%d}`, adv.ID), rr.Body.String())

	rr = doRequest(t, board, http.MethodGet, advPath, "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Advertisment not found"}`, rr.Body.String())
}

func TestEndToEnd_LongPasswords(t *testing.T) {
	board := newBoard(t)
	longPassword := strings.Repeat("a", 98) + "1"
	adv := `{"title":"Bike for sale","description":"Red, almost new"}`

	rr := doRequest(t, board, http.MethodPost, "/user",
		fmt.Sprintf(`{"name":"Alice","email":"alice@example.com","password":%q}`, longPassword), nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	userPath := fmt.Sprintf("/user/%d", decode[models.User](t, rr.Body.Bytes()).UserID)

	rr = doRequest(t, board, http.MethodPost, "/advertisment", adv,
		map[string]string{emailHeader: "alice@example.com", passwordHeader: longPassword})
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doRequest(t, board, http.MethodPost, "/advertisment", adv,
		map[string]string{emailHeader: "alice@example.com", passwordHeader: strings.Repeat("a", 98) + "2"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doRequest(t, board, http.MethodPatch, userPath,
		fmt.Sprintf(`{"password":%q}`, strings.Repeat("ж", 98)+"1"), nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doRequest(t, board, http.MethodPost, "/advertisment", adv,
		map[string]string{emailHeader: "alice@example.com", passwordHeader: longPassword})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	newPassword := strings.Repeat("b", 90) + "9"
	rr = doRequest(t, board, http.MethodPatch, userPath, fmt.Sprintf(`{"password":%q}`, newPassword), nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doRequest(t, board, http.MethodPost, "/advertisment", adv,
		map[string]string{emailHeader: "alice@example.com", passwordHeader: newPassword})
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestEndToEnd_LongName(t *testing.T) {
	board := newBoard(t)
	name := strings.Repeat("Ж", 150)

	rr := doRequest(t, board, http.MethodPost, "/user",
		fmt.Sprintf(`{"name":%q,"email":"long@example.com","password":"s3cretpass"}`, name), nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, name, decode[models.User](t, rr.Body.Bytes()).Name)
}

func TestEndToEnd_PingAndVersion(t *testing.T) {
	board := newBoard(t)

	rr := doRequest(t, board, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, board, http.MethodGet, "/version", "", nil)
	assert.Equal(t, "test", rr.Body.String())
}
