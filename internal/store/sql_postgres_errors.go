// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the driver-independent class of a database error.
type ErrorClassification int

const (
	// Unclassified covers every error without a more specific class.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE or PRIMARY KEY constraint rejected the
	// statement.
	UniqueViolation

	// ForeignKeyViolation means a referenced row does not exist.
	ForeignKeyViolation

	// Retryable means the operation may succeed if attempted again
	// (connection loss, serialization failure, busy database).
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are [Unclassified].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return Unclassified
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation

	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40: transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57: operator intervention
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return Unclassified
}
