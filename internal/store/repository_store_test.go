// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
)

func storeRows() *sqlmock.Rows {
	return sqlmock.NewRows(storeColumns)
}

func TestCreateStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	store := models.Store{UserID: 1, Name: "groceries", CreatedAt: registeredOn, ModifiedAt: registeredOn}

	mock.ExpectQuery(`INSERT INTO stores (.+) RETURNING id, user_id, name, created_at, modified_at`).
		WithArgs(int64(1), "groceries", registeredOn, registeredOn).
		WillReturnRows(storeRows().AddRow(10, 1, "groceries", registeredOn, registeredOn))

	created, err := repo.CreateStore(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, int64(1), created.UserID)
}

func TestCreateStore_UnknownOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO stores`).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateStore(context.Background(), models.Store{UserID: 99, Name: "x"})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserStore_ScopedByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM stores WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(10), int64(1)).
		WillReturnRows(storeRows().AddRow(10, 1, "groceries", registeredOn, registeredOn))

	store, err := repo.FindUserStore(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "groceries", store.Name)
}

func TestFindUserStore_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM stores`).
		WithArgs(int64(10), int64(2)).
		WillReturnRows(storeRows())

	_, err := repo.FindUserStore(context.Background(), 2, 10)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestUpdateStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	later := registeredOn.Add(1000)
	mock.ExpectQuery(`UPDATE stores SET name = \$1, modified_at = \$2 WHERE id = \$3 AND user_id = \$4`).
		WithArgs("hardware", later, int64(10), int64(1)).
		WillReturnRows(storeRows().AddRow(10, 1, "hardware", registeredOn, later))

	updated, err := repo.UpdateStore(context.Background(), models.Store{ID: 10, UserID: 1, Name: "hardware", ModifiedAt: later})
	require.NoError(t, err)
	assert.Equal(t, "hardware", updated.Name)
	assert.Equal(t, later, updated.ModifiedAt)
}

func TestUpdateStore_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectQuery(`UPDATE stores`).WillReturnRows(storeRows())

	_, err := repo.UpdateStore(context.Background(), models.Store{ID: 10, UserID: 2})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestDeleteStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM stores WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteStore(context.Background(), 1, 10))
}

func TestDeleteStore_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM stores`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteStore(context.Background(), 1, 10), ErrStoreNotFound)
}

func TestCountUserStores_WithFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM stores WHERE user_id = \$1 AND LOWER\(name\) LIKE \$2 ESCAPE`).
		WithArgs(int64(1), `%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountUserStores(context.Background(), 1, "50%")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountUserStores_NoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM stores WHERE user_id = \$1$`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := repo.CountUserStores(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestListUserStores(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM stores WHERE user_id = \$1 AND LOWER\(name\) LIKE \$2 ESCAPE (.+) ORDER BY id ASC LIMIT 5 OFFSET 5`).
		WithArgs(int64(1), "%t%").
		WillReturnRows(storeRows().AddRow(6, 1, "trave", registeredOn, registeredOn))

	stores, err := repo.ListUserStores(context.Background(), 1, "t", 5, 5)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "trave", stores[0].Name)
}

func TestListUserStores_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM stores`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.ListUserStores(context.Background(), 1, "", 0, 5)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListUserStores_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM stores`).WillReturnError(errors.New("boom"))

	_, err := repo.ListUserStores(context.Background(), 1, "", 0, 5)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
