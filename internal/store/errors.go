// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTokenAlreadyBlacklisted is returned when the token string is
	// already present in the blacklist.
	ErrTokenAlreadyBlacklisted = errors.New("token already blacklisted")

	// ErrStoreNotFound is returned when no store matches both the id and
	// the owner.
	ErrStoreNotFound = errors.New("store not found")

	// ErrStoreItemNotFound is returned when no item matches both the id and
	// the parent store.
	ErrStoreItemNotFound = errors.New("store item not found")
)

// Low-level database operation errors, wrapped together with the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by NewStorages for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
