// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/utils"
	"github.com/MKhiriev/go-ad-board/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	email    string
	password string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for the server at cfg.ServerURL. A URL without a scheme is
// treated as http.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("server adapter created")
	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetCredentials(email, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.email = strings.TrimSpace(email)
	h.password = password
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// authedRequest attaches the stored credentials as email and password
// headers.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.request(ctx).
		SetHeader("email", h.email).
		SetHeader("password", h.password)
}

func idParam(id int64) string {
	return strconv.FormatInt(id, 10)
}

// do sends req and decodes a successful body into result.
func do[T any](req *resty.Request, method, path, op string) (T, error) {
	var result T

	resp, err := req.SetResult(&result).Execute(method, path)
	if err != nil {
		return result, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	return do[models.User](h.request(ctx).SetBody(user), resty.MethodPost, "/user", "create user")
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	return do[models.User](h.request(ctx).SetPathParam("id", idParam(id)), resty.MethodGet, "/user/{id}", "get user")
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.UserPatch, error) {
	return do[models.UserPatch](h.request(ctx).SetPathParam("id", idParam(id)).SetBody(patch),
		resty.MethodPatch, "/user/{id}", "update user")
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	return do[models.User](h.request(ctx).SetPathParam("id", idParam(id)), resty.MethodDelete, "/user/{id}", "delete user")
}

func (h *httpServerAdapter) CreateAdvertisement(ctx context.Context, adv models.AdvertisementCreate) (models.Advertisement, error) {
	return do[models.Advertisement](h.authedRequest(ctx).SetBody(adv), resty.MethodPost, "/advertisment", "create advertisement")
}

func (h *httpServerAdapter) GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error) {
	return do[models.Advertisement](h.request(ctx).SetPathParam("id", idParam(id)),
		resty.MethodGet, "/advertisment/{id}", "get advertisement")
}

func (h *httpServerAdapter) UpdateAdvertisement(ctx context.Context, id int64, patch models.AdvertisementPatch) (models.AdvertisementPatch, error) {
	return do[models.AdvertisementPatch](h.authedRequest(ctx).SetPathParam("id", idParam(id)).SetBody(patch),
		resty.MethodPatch, "/advertisment/{id}", "update advertisement")
}

func (h *httpServerAdapter) DeleteAdvertisement(ctx context.Context, id int64) (models.AdvertisementDeleted, error) {
	return do[models.AdvertisementDeleted](h.authedRequest(ctx).SetPathParam("id", idParam(id)),
		resty.MethodDelete, "/advertisment/{id}", "delete advertisement")
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	_, err := do[map[string]string](h.request(ctx), resty.MethodGet, "/ping", "ping")
	return err
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).SetHeader("Accept", "text/plain").Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("version: %w", err)
	}
	return strings.TrimSpace(resp.String()), nil
}
