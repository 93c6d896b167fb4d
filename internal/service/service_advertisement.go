// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/models"
)

type advertisementService struct {
	advertisementRepository store.AdvertisementRepository
	logger                  *logger.Logger
}

func NewAdvertisementService(advertisementRepository store.AdvertisementRepository, logger *logger.Logger) AdvertisementService {
	return &advertisementService{
		advertisementRepository: advertisementRepository,
		logger:                  logger,
	}
}

// CreateAdvertisement stores adv with owner as its owner. The owner never
// comes from the request body.
func (s *advertisementService) CreateAdvertisement(ctx context.Context, owner models.User, adv models.AdvertisementCreate) (models.Advertisement, error) {
	created, err := s.advertisementRepository.CreateAdvertisement(ctx, owner.UserID, adv)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", owner.UserID).Msg("advertisement creation ended with error")
		return models.Advertisement{}, fmt.Errorf("advertisement creation ended with error: %w", err)
	}
	return created, nil
}

func (s *advertisementService) GetAdvertisement(ctx context.Context, id int64) (models.Advertisement, error) {
	adv, err := s.advertisementRepository.FindAdvertisementByID(ctx, id)
	if err != nil {
		return models.Advertisement{}, fmt.Errorf("get advertisement %d: %w", id, err)
	}
	return adv, nil
}

// UpdateAdvertisement checks existence, then ownership, then updates in one
// statement conditioned on the owner.
func (s *advertisementService) UpdateAdvertisement(ctx context.Context, user models.User, id int64, patch models.AdvertisementPatch) (models.AdvertisementPatch, error) {
	if err := s.checkOwner(ctx, user, id); err != nil {
		return models.AdvertisementPatch{}, err
	}

	if _, err := s.advertisementRepository.UpdateAdvertisement(ctx, id, user.UserID, patch.Fields()); err != nil {
		logger.FromContext(ctx).Err(err).Int64("advertisement_id", id).Msg("advertisement update ended with error")
		return models.AdvertisementPatch{}, fmt.Errorf("update advertisement %d: %w", id, err)
	}

	return patch, nil
}

// DeleteAdvertisement checks existence, then ownership, then deletes in one
// statement conditioned on the owner.
func (s *advertisementService) DeleteAdvertisement(ctx context.Context, user models.User, id int64) (models.AdvertisementDeleted, error) {
	if err := s.checkOwner(ctx, user, id); err != nil {
		return models.AdvertisementDeleted{}, err
	}

	deleted, err := s.advertisementRepository.DeleteAdvertisement(ctx, id, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("advertisement_id", id).Msg("advertisement deletion ended with error")
		return models.AdvertisementDeleted{}, fmt.Errorf("delete advertisement %d: %w", id, err)
	}

	return models.AdvertisementDeleted{ID: deleted.ID}, nil
}

func (s *advertisementService) checkOwner(ctx context.Context, user models.User, id int64) error {
	if _, err := s.advertisementRepository.FindAdvertisementByID(ctx, id); err != nil {
		return fmt.Errorf("find advertisement %d: %w", id, err)
	}

	isOwner, err := s.advertisementRepository.CheckOwnership(ctx, user.UserID, id)
	if err != nil {
		return fmt.Errorf("check ownership of advertisement %d: %w", id, err)
	}
	if !isOwner {
		logger.FromContext(ctx).Warn().
			Int64("user_id", user.UserID).
			Int64("advertisement_id", id).
			Msg("user is not the owner of the advertisement")
		return ErrNotAdvertisementOwner
	}

	return nil
}
