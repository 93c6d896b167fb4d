// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ad-board/internal/logger"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// table describes one record kind: where it lives, which columns may be
// searched or written, how a row is scanned, and which sentinel errors stand
// for missing rows and violated constraints.
type table[T any] struct {
	name string
	// columns are returned by every statement, in scan order.
	columns []string
	// attributes may be used in getByAttribute.
	attributes []string
	// mutable may be written by create and update.
	mutable []string
	scan    func(rowScanner) (T, error)

	notFound  error
	conflict  error
	reference error
}

// tableRepository implements the generic create, read, update and delete
// operations over a table descriptor. Every operation is a single statement
// on a pooled connection.
type tableRepository[T any] struct {
	db    *DB
	table table[T]
}

func newTableRepository[T any](db *DB, t table[T]) *tableRepository[T] {
	return &tableRepository[T]{db: db, table: t}
}

// create inserts a row built from fields and returns the stored row.
func (r *tableRepository[T]) create(ctx context.Context, fields map[string]any) (T, error) {
	var zero T
	if err := r.checkColumns(fields, r.table.mutable); err != nil {
		return zero, err
	}

	query := r.db.builder.
		Insert(r.table.name).
		SetMap(fields).
		Suffix("RETURNING " + r.returning())

	return r.queryRow(ctx, "create", query)
}

// getByAttribute returns the first row whose attr equals value. A missing row
// is reported through found, not through the error.
func (r *tableRepository[T]) getByAttribute(ctx context.Context, attr string, value any) (T, bool, error) {
	var zero T
	if !slices.Contains(r.table.attributes, attr) {
		return zero, false, fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, r.table.name, attr)
	}

	query := r.db.builder.
		Select(r.table.columns...).
		From(r.table.name).
		Where(sq.Eq{attr: value}).
		Limit(1)

	row, err := r.queryRow(ctx, "getByAttribute", query)
	if errors.Is(err, r.table.notFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return row, true, nil
}

// update sets fields on the rows matching where and returns the updated row.
// No matching row yields the table's not-found error.
func (r *tableRepository[T]) update(ctx context.Context, where sq.Eq, fields map[string]any) (T, error) {
	var zero T
	if len(fields) == 0 {
		return zero, ErrNothingToUpdate
	}
	if err := r.checkColumns(fields, r.table.mutable); err != nil {
		return zero, err
	}

	query := r.db.builder.
		Update(r.table.name).
		SetMap(fields).
		Where(where).
		Suffix("RETURNING " + r.returning())

	return r.queryRow(ctx, "update", query)
}

// delete removes the rows matching where and returns the removed row.
// No matching row yields the table's not-found error.
func (r *tableRepository[T]) delete(ctx context.Context, where sq.Eq) (T, error) {
	query := r.db.builder.
		Delete(r.table.name).
		Where(where).
		Suffix("RETURNING " + r.returning())

	return r.queryRow(ctx, "delete", query)
}

func (r *tableRepository[T]) queryRow(ctx context.Context, op string, query sq.Sqlizer) (T, error) {
	var zero T
	log := logger.FromContext(ctx)
	fn := r.table.name + "." + op

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row, err := r.table.scan(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err == nil {
		return row, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return zero, r.table.notFound
	}

	log.Err(err).Str("func", fn).Msg("query failed")

	switch r.db.errorClassificator.Classify(err) {
	case UniqueViolation:
		if r.table.conflict != nil {
			return zero, r.table.conflict
		}
	case ForeignKeyViolation:
		if r.table.reference != nil {
			return zero, r.table.reference
		}
	}

	return zero, fmt.Errorf("%w: %s: %w", ErrExecutingQuery, fn, err)
}

func (r *tableRepository[T]) checkColumns(fields map[string]any, allowed []string) error {
	for _, col := range slices.Sorted(maps.Keys(fields)) {
		if !slices.Contains(allowed, col) {
			return fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, r.table.name, col)
		}
	}
	return nil
}

func (r *tableRepository[T]) returning() string {
	return strings.Join(r.table.columns, ", ")
}

// timestamp scans the TIMESTAMP columns of every supported driver: pgx
// returns time.Time, SQLite may return text depending on how the value was
// written.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	time.RFC3339Nano,
}

// Scan implements sql.Scanner.
func (ts *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		ts.Time = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		ts.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (ts *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as timestamp", s)
}
