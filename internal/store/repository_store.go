// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
)

// storeRepository implements [StoreRepository]. The owner id takes part in
// the WHERE clause of every statement, so a store owned by somebody else is
// indistinguishable from a missing one.
type storeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewStoreRepository(db *DB, logger *logger.Logger) StoreRepository {
	logger.Debug().Msg("creating store repository")
	return &storeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *storeRepository) CreateStore(ctx context.Context, store models.Store) (models.Store, error) {
	query, args, err := r.db.builder.
		Insert(storesTable).
		Columns("user_id", "name", "created_at", "modified_at").
		Values(store.UserID, store.Name, store.CreatedAt, store.ModifiedAt).
		Suffix(returning(storeColumns)).
		ToSql()
	if err != nil {
		return models.Store{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanStore(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeRepository.CreateStore").Msg("error inserting store")
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Store{}, ErrNoUserWasFound
		}
		return models.Store{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *storeRepository) FindUserStore(ctx context.Context, userID, storeID int64) (models.Store, error) {
	query, args, err := r.db.builder.
		Select(storeColumns...).
		From(storesTable).
		Where(sq.Eq{"id": storeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Store{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	store, err := scanStore(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Store{}, ErrStoreNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeRepository.FindUserStore").Msg("error selecting store")
		return models.Store{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return store, nil
}

// UpdateStore writes the name and modified_at of store, matching on both
// id and owner.
func (r *storeRepository) UpdateStore(ctx context.Context, store models.Store) (models.Store, error) {
	query, args, err := r.db.builder.
		Update(storesTable).
		Set("name", store.Name).
		Set("modified_at", store.ModifiedAt).
		Where(sq.Eq{"id": store.ID, "user_id": store.UserID}).
		Suffix(returning(storeColumns)).
		ToSql()
	if err != nil {
		return models.Store{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanStore(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Store{}, ErrStoreNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeRepository.UpdateStore").Msg("error updating store")
		return models.Store{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteStore removes the store; its items go with it through the
// ON DELETE CASCADE foreign key.
func (r *storeRepository) DeleteStore(ctx context.Context, userID, storeID int64) error {
	query, args, err := r.db.builder.
		Delete(storesTable).
		Where(sq.Eq{"id": storeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeRepository.DeleteStore").Msg("error deleting store")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrStoreNotFound)
}

func (r *storeRepository) CountUserStores(ctx context.Context, userID int64, filter string) (int, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(storesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(nameContains(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeRepository.CountUserStores").Msg("error counting stores")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListUserStores returns one window of the owner's stores in insertion
// order.
func (r *storeRepository) ListUserStores(ctx context.Context, userID int64, filter string, offset, limit int) ([]models.Store, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(storeColumns...).
		From(storesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(nameContains(filter)).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*storeRepository.ListUserStores").Msg("error selecting stores")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stores := make([]models.Store, 0, limit)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			log.Err(err).Str("func", "*storeRepository.ListUserStores").Msg("error scanning store")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stores, nil
}
