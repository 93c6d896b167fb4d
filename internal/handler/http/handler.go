// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/service"
)

const defaultMaxBodyBytes int64 = 1 << 20

type Handler struct {
	services *service.Services
	metrics  *httpMetrics

	maxBodyBytes   int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        newHTTPMetrics(),
		maxBodyBytes:   maxBodyBytes,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
