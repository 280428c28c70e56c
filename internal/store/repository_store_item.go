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

// storeItemRepository implements [StoreItemRepository]. Items are always
// addressed through their parent store id.
type storeItemRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewStoreItemRepository(db *DB, logger *logger.Logger) StoreItemRepository {
	logger.Debug().Msg("creating store item repository")
	return &storeItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *storeItemRepository) CreateItem(ctx context.Context, item models.StoreItem) (models.StoreItem, error) {
	query, args, err := r.db.builder.
		Insert(storeItemsTable).
		Columns("store_id", "name", "description", "created_at", "modified_at").
		Values(item.StoreID, item.Name, nullableString(item.Description), item.CreatedAt, item.ModifiedAt).
		Suffix(returning(storeItemColumns)).
		ToSql()
	if err != nil {
		return models.StoreItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanStoreItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeItemRepository.CreateItem").Msg("error inserting item")
		if r.db.classify(err) == ForeignKeyViolation {
			return models.StoreItem{}, ErrStoreNotFound
		}
		return models.StoreItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *storeItemRepository) FindStoreItem(ctx context.Context, storeID, itemID int64) (models.StoreItem, error) {
	query, args, err := r.db.builder.
		Select(storeItemColumns...).
		From(storeItemsTable).
		Where(sq.Eq{"id": itemID, "store_id": storeID}).
		ToSql()
	if err != nil {
		return models.StoreItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanStoreItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoreItem{}, ErrStoreItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeItemRepository.FindStoreItem").Msg("error selecting item")
		return models.StoreItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// UpdateItem writes name, description and modified_at of item, matching on
// both id and parent store.
func (r *storeItemRepository) UpdateItem(ctx context.Context, item models.StoreItem) (models.StoreItem, error) {
	query, args, err := r.db.builder.
		Update(storeItemsTable).
		Set("name", item.Name).
		Set("description", nullableString(item.Description)).
		Set("modified_at", item.ModifiedAt).
		Where(sq.Eq{"id": item.ID, "store_id": item.StoreID}).
		Suffix(returning(storeItemColumns)).
		ToSql()
	if err != nil {
		return models.StoreItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanStoreItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoreItem{}, ErrStoreItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeItemRepository.UpdateItem").Msg("error updating item")
		return models.StoreItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *storeItemRepository) DeleteItem(ctx context.Context, storeID, itemID int64) error {
	query, args, err := r.db.builder.
		Delete(storeItemsTable).
		Where(sq.Eq{"id": itemID, "store_id": storeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeItemRepository.DeleteItem").Msg("error deleting item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrStoreItemNotFound)
}

func (r *storeItemRepository) CountStoreItems(ctx context.Context, storeID int64, filter string) (int, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(storeItemsTable).
		Where(sq.Eq{"store_id": storeID}).
		Where(nameContains(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*storeItemRepository.CountStoreItems").Msg("error counting items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListStoreItems returns one window of the store's items, newest first.
// id breaks ties between items created in the same instant.
func (r *storeItemRepository) ListStoreItems(ctx context.Context, storeID int64, filter string, offset, limit int) ([]models.StoreItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(storeItemColumns...).
		From(storeItemsTable).
		Where(sq.Eq{"store_id": storeID}).
		Where(nameContains(filter)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*storeItemRepository.ListStoreItems").Msg("error selecting items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.StoreItem, 0, limit)
	for rows.Next() {
		item, err := scanStoreItem(rows)
		if err != nil {
			log.Err(err).Str("func", "*storeItemRepository.ListStoreItems").Msg("error scanning item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
