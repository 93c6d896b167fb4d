// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/models"
)

var advColumns = []string{"id", "title", "description", "owner_id", "created_at"}

func newTestAdvRepo(t *testing.T) (AdvertisementRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewAdvertisementRepository(db, logger.Nop()), mock
}

func TestCreateAdvertisement_Success(t *testing.T) {
	repo, mock := newTestAdvRepo(t)
	in := models.AdvertisementCreate{Title: "Bike for sale", Description: "Red, almost new"}

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO advertisements (description,owner_id,title) VALUES ($1,$2,$3) RETURNING id, title, description, owner_id, created_at")).
		WithArgs(in.Description, int64(7), in.Title).
		WillReturnRows(sqlmock.NewRows(advColumns).AddRow(1, in.Title, in.Description, 7, time.Now()))

	adv, err := repo.CreateAdvertisement(context.Background(), 7, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), adv.ID)
	assert.Equal(t, int64(7), adv.OwnerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAdvertisement_MissingOwner(t *testing.T) {
	repo, mock := newTestAdvRepo(t)

	mock.ExpectQuery("INSERT INTO advertisements").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateAdvertisement(context.Background(), 7, models.AdvertisementCreate{Title: "title", Description: "description"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindAdvertisementByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestAdvRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, title, description, owner_id, created_at FROM advertisements WHERE id = $1 LIMIT 1")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(advColumns).AddRow(1, "title", "description", 7, time.Now()))

		adv, err := repo.FindAdvertisementByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "title", adv.Title)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestAdvRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM advertisements").WillReturnRows(sqlmock.NewRows(advColumns))

		_, err := repo.FindAdvertisementByID(context.Background(), 1)
		assert.ErrorIs(t, err, ErrAdvertisementNotFound)
	})
}

func TestUpdateAdvertisement_ConditionedOnOwner(t *testing.T) {
	repo, mock := newTestAdvRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE advertisements SET title = $1 WHERE id = $2 AND owner_id = $3 RETURNING id, title, description, owner_id, created_at")).
		WithArgs("New title", int64(1), int64(7)).
		WillReturnRows(sqlmock.NewRows(advColumns).AddRow(1, "New title", "description", 7, time.Now()))

	adv, err := repo.UpdateAdvertisement(context.Background(), 1, 7, map[string]any{"title": "New title"})
	require.NoError(t, err)
	assert.Equal(t, "New title", adv.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAdvertisement_OwnerImmutable(t *testing.T) {
	repo, _ := newTestAdvRepo(t)

	_, err := repo.UpdateAdvertisement(context.Background(), 1, 7, map[string]any{"owner_id": int64(8)})
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestUpdateAdvertisement_NoRow(t *testing.T) {
	repo, mock := newTestAdvRepo(t)
	mock.ExpectQuery("UPDATE advertisements").WillReturnRows(sqlmock.NewRows(advColumns))

	_, err := repo.UpdateAdvertisement(context.Background(), 1, 7, map[string]any{"title": "New title"})
	assert.ErrorIs(t, err, ErrAdvertisementNotFound)
}

func TestDeleteAdvertisement(t *testing.T) {
	repo, mock := newTestAdvRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"DELETE FROM advertisements WHERE id = $1 AND owner_id = $2 RETURNING id, title, description, owner_id, created_at")).
		WithArgs(int64(1), int64(7)).
		WillReturnRows(sqlmock.NewRows(advColumns).AddRow(1, "title", "description", 7, time.Now()))

	adv, err := repo.DeleteAdvertisement(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), adv.ID)
}

func TestCheckOwnership(t *testing.T) {
	const query = "SELECT 1 FROM advertisements AS a JOIN users AS u ON u.id = a.owner_id WHERE a.id = $1 AND u.id = $2 LIMIT 1"

	t.Run("owner", func(t *testing.T) {
		repo, mock := newTestAdvRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(int64(1), int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		ok, err := repo.CheckOwnership(context.Background(), 7, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not owner", func(t *testing.T) {
		repo, mock := newTestAdvRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		ok, err := repo.CheckOwnership(context.Background(), 8, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestAdvRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(errors.New("boom"))

		_, err := repo.CheckOwnership(context.Background(), 8, 1)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
