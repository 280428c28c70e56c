// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
)

type blacklistRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlacklistRepository constructs a [BlacklistRepository] over the
// "blacklist_tokens" table.
func NewBlacklistRepository(db *DB, logger *logger.Logger) BlacklistRepository {
	logger.Debug().Msg("creating blacklist repository")
	return &blacklistRepository{
		db:     db,
		logger: logger,
	}
}

// AddToken inserts entry in a single statement. The UNIQUE constraint on
// the token column turns a concurrent second revocation into
// [ErrTokenAlreadyBlacklisted].
func (r *blacklistRepository) AddToken(ctx context.Context, entry models.BlacklistEntry) error {
	query, args, err := r.db.builder.
		Insert(blacklistTable).
		Columns("token", "blacklisted_on", "expires_at").
		Values(entry.Token, entry.BlacklistedOn, entry.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classify(err) == UniqueViolation {
			return ErrTokenAlreadyBlacklisted
		}
		logger.FromContext(ctx).Err(err).Str("func", "*blacklistRepository.AddToken").Msg("error blacklisting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// IsBlacklisted reports whether the exact token string has been revoked.
func (r *blacklistRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(blacklistTable).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blacklistRepository.IsBlacklisted").Msg("error checking blacklist")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// DeleteExpired removes entries whose token expired strictly before before.
func (r *blacklistRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := r.db.builder.
		Delete(blacklistTable).
		Where(sq.Lt{"expires_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blacklistRepository.DeleteExpired").Msg("error pruning blacklist")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
