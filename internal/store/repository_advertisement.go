// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/models"
)

var advertisementsTable = table[models.Advertisement]{
	name:       models.Advertisement{}.TableName(),
	columns:    []string{"id", "title", "description", "owner_id", "created_at"},
	attributes: []string{"id", "owner_id"},
	mutable:    []string{"title", "description", "owner_id"},
	scan:       scanAdvertisement,
	notFound:   ErrAdvertisementNotFound,
	reference:  ErrUserNotFound,
}

func scanAdvertisement(row rowScanner) (models.Advertisement, error) {
	var (
		adv       models.Advertisement
		createdAt timestamp
	)
	if err := row.Scan(&adv.ID, &adv.Title, &adv.Description, &adv.OwnerID, &createdAt); err != nil {
		return models.Advertisement{}, err
	}
	adv.CreatedAt = createdAt.Time
	return adv, nil
}

// advertisementRepository is the SQL-backed implementation of
// [AdvertisementRepository] over the "advertisements" table.
type advertisementRepository struct {
	db     *DB
	ads    *tableRepository[models.Advertisement]
	logger *logger.Logger
}

// NewAdvertisementRepository constructs an [AdvertisementRepository] backed
// by the provided database connection and logger.
func NewAdvertisementRepository(db *DB, logger *logger.Logger) AdvertisementRepository {
	logger.Debug().Msg("creating advertisement repository")
	return &advertisementRepository{
		db:     db,
		ads:    newTableRepository(db, advertisementsTable),
		logger: logger,
	}
}

// CreateAdvertisement stores a new advertisement owned by ownerID.
// A missing owner yields [ErrUserNotFound].
func (r *advertisementRepository) CreateAdvertisement(ctx context.Context, ownerID int64, adv models.AdvertisementCreate) (models.Advertisement, error) {
	created, err := r.ads.create(ctx, adv.Fields(ownerID))
	if err != nil {
		return models.Advertisement{}, fmt.Errorf("error creating advertisement: %w", err)
	}
	return created, nil
}

// FindAdvertisementByID returns the advertisement or [ErrAdvertisementNotFound].
func (r *advertisementRepository) FindAdvertisementByID(ctx context.Context, id int64) (models.Advertisement, error) {
	adv, found, err := r.ads.getByAttribute(ctx, "id", id)
	if err != nil {
		return models.Advertisement{}, fmt.Errorf("error finding advertisement %d: %w", id, err)
	}
	if !found {
		return models.Advertisement{}, ErrAdvertisementNotFound
	}
	return adv, nil
}

// UpdateAdvertisement sets fields on the advertisement id owned by ownerID.
// The owner cannot be changed.
func (r *advertisementRepository) UpdateAdvertisement(ctx context.Context, id, ownerID int64, fields map[string]any) (models.Advertisement, error) {
	if _, ok := fields["owner_id"]; ok {
		return models.Advertisement{}, fmt.Errorf("%w: owner_id is immutable", ErrUnknownAttribute)
	}

	updated, err := r.ads.update(ctx, sq.Eq{"id": id, "owner_id": ownerID}, fields)
	if err != nil {
		return models.Advertisement{}, fmt.Errorf("error updating advertisement %d: %w", id, err)
	}
	return updated, nil
}

// DeleteAdvertisement removes the advertisement id owned by ownerID.
func (r *advertisementRepository) DeleteAdvertisement(ctx context.Context, id, ownerID int64) (models.Advertisement, error) {
	deleted, err := r.ads.delete(ctx, sq.Eq{"id": id, "owner_id": ownerID})
	if err != nil {
		return models.Advertisement{}, fmt.Errorf("error deleting advertisement %d: %w", id, err)
	}
	return deleted, nil
}

// CheckOwnership reports whether userID owns advID by joining the
// advertisement to its owner.
func (r *advertisementRepository) CheckOwnership(ctx context.Context, userID, advID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("1").
		From("advertisements AS a").
		Join("users AS u ON u.id = a.owner_id").
		Where(sq.Eq{"a.id": advID, "u.id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).
			Str("func", "*advertisementRepository.CheckOwnership").
			Int64("user_id", userID).
			Int64("advertisement_id", advID).
			Msg("ownership check failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
