// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
)

// tokenBlacklistRepository is the PostgreSQL-backed implementation of
// [TokenBlacklistRepository]. Revoked refresh tokens are stored in the
// "token_blacklist" table keyed by jti, so revocation survives restarts and
// is shared across server instances.
type tokenBlacklistRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenBlacklistRepository constructs a [TokenBlacklistRepository] backed
// by the provided database connection and logger.
func NewTokenBlacklistRepository(db *DB, logger *logger.Logger) TokenBlacklistRepository {
	logger.Debug().Msg("creating token blacklist repository")
	return &tokenBlacklistRepository{
		db:     db,
		logger: logger,
	}
}

// Add records the jti as revoked. The INSERT carries ON CONFLICT DO NOTHING,
// so adding an already-blacklisted token is a successful no-op.
func (r *tokenBlacklistRepository) Add(ctx context.Context, jti string, userID int64, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addBlacklistEntry, jti, userID, expiresAt); err != nil {
		log.Err(err).Str("func", "*tokenBlacklistRepository.Add").Msg("error: executing insert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Contains reports whether the jti is present in the blacklist.
func (r *tokenBlacklistRepository) Contains(ctx context.Context, jti string) (bool, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, containsBlacklistEntry, jti)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenBlacklistRepository.Contains").Msg("error: row is nil")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var revoked bool
	if err := row.Scan(&revoked); err != nil {
		log.Err(err).Str("func", "*tokenBlacklistRepository.Contains").Msg("error: scanning error")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return revoked, nil
}

// PurgeExpired deletes entries whose expiry timestamp has passed and returns
// the number of rows removed. Expired refresh tokens fail time-based
// validation on their own, so their blacklist rows only take up space.
func (r *tokenBlacklistRepository) PurgeExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, purgeExpiredBlacklist)
	if err != nil {
		log.Err(err).Str("func", "*tokenBlacklistRepository.PurgeExpired").Msg("error: executing delete")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*tokenBlacklistRepository.PurgeExpired").Msg("error: reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return purged, nil
}
