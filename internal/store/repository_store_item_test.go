// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
)

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows(storeItemColumns)
}

func TestCreateItem_WithDescription(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreItemRepository(db, logger.Nop())

	desc := "two litres"
	item := models.StoreItem{StoreID: 10, Name: "milk", Description: &desc, CreatedAt: registeredOn, ModifiedAt: registeredOn}

	mock.ExpectQuery(`INSERT INTO store_items (.+) RETURNING id, store_id, name, description, created_at, modified_at`).
		WithArgs(int64(10), "milk", "two litres", registeredOn, registeredOn).
		WillReturnRows(itemRows().AddRow(5, 10, "milk", "two litres", registeredOn, registeredOn))

	created, err := repo.CreateItem(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	require.NotNil(t, created.Description)
	assert.Equal(t, "two litres", *created.Description)
}

func TestCreateItem_WithoutDescription(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreItemRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO store_items`).
		WithArgs(int64(10), "bread", nil, registeredOn, registeredOn).
		WillReturnRows(itemRows().AddRow(6, 10, "bread", nil, registeredOn, registeredOn))

	created, err := repo.CreateItem(context.Background(), models.StoreItem{StoreID: 10, Name: "bread", CreatedAt: registeredOn, ModifiedAt: registeredOn})
	require.NoError(t, err)
	assert.Nil(t, created.Description)
}

func TestCreateItem_StoreVanished(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreItemRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO store_items`).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateItem(context.Background(), models.StoreItem{StoreID: 10, Name: "x"})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestFindStoreItem_ScopedByStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreItemRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM store_items WHERE id = \$1 AND store_id = \$2`).
		WithArgs(int64(5), int64(10)).
		WillReturnRows(itemRows())

	_, err := repo.FindStoreItem(context.Background(), 10, 5)
	assert.ErrorIs(t, err, ErrStoreItemNotFound)
}

func TestUpdateItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreItemRepository(db, logger.Nop())

	desc := "skimmed"
	mock.ExpectQuery(`UPDATE store_items SET name = \$1, description = \$2, modified_at = \$3 WHERE id = \$4 AND store_id = \$5`).
		WithArgs("milk", "skimmed", registeredOn, int64(5), int64(10)).
		WillReturnRows(itemRows().AddRow(5, 10, "milk", "skimmed", registeredOn, registeredOn))

	updated, err := repo.UpdateItem(context.Background(), models.StoreItem{ID: 5, StoreID: 10, Name: "milk", Description: &desc, ModifiedAt: registeredOn})
	require.NoError(t, err)
	assert.Equal(t, "skimmed", *updated.Description)
}

func TestDeleteItem_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreItemRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM store_items WHERE id = \$1 AND store_id = \$2`).
		WithArgs(int64(5), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteItem(context.Background(), 10, 5), ErrStoreItemNotFound)
}

func TestListStoreItems_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreItemRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM store_items WHERE store_id = \$1 ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 0`).
		WithArgs(int64(10)).
		WillReturnRows(itemRows().
			AddRow(7, 10, "eggs", nil, registeredOn.Add(2), registeredOn).
			AddRow(6, 10, "bread", nil, registeredOn.Add(1), registeredOn))

	items, err := repo.ListStoreItems(context.Background(), 10, "", 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(7), items[0].ID)
}

func TestCountStoreItems(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreItemRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM store_items WHERE store_id = \$1 AND LOWER\(name\) LIKE \$2`).
		WithArgs(int64(10), `%a\_b%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountStoreItems(context.Background(), 10, "A_B")
	require.NoError(t, err)
	assert.Zero(t, count)
}
