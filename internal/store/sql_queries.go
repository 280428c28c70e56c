// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-store-keeper/models"
)

const (
	usersTable      = "users"
	blacklistTable  = "blacklist_tokens"
	storesTable     = "stores"
	storeItemsTable = "store_items"
)

var (
	userColumns      = []string{"id", "email", "password_hash", "registered_on"}
	storeColumns     = []string{"id", "user_id", "name", "created_at", "modified_at"}
	storeItemColumns = []string{"id", "store_id", "name", "description", "created_at", "modified_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// likeEscaper escapes LIKE wildcards so the filter matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// nameContains restricts rows to those whose lower-cased name contains
// filter. An empty filter yields nil, which squirrel's Where ignores.
func nameContains(filter string) sq.Sqlizer {
	if filter == "" {
		return nil
	}
	return sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(filter))+"%")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.RegisteredOn)
	return user, err
}

func scanStore(row rowScanner) (models.Store, error) {
	var store models.Store
	err := row.Scan(&store.ID, &store.UserID, &store.Name, &store.CreatedAt, &store.ModifiedAt)
	return store, err
}

func scanStoreItem(row rowScanner) (models.StoreItem, error) {
	var (
		item        models.StoreItem
		description sql.NullString
	)
	err := row.Scan(&item.ID, &item.StoreID, &item.Name, &description, &item.CreatedAt, &item.ModifiedAt)
	if description.Valid {
		item.Description = &description.String
	}
	return item, err
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
