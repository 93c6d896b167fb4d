// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ad-board/internal/logger"
)

// pinger is satisfied by *store.Storages.
type pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	db     pinger
	logger *logger.Logger
}

func NewHealthService(db pinger, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

func (s *healthService) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Err(err).Str("func", "healthService.Ping").Msg("database is unreachable")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}
