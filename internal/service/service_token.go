// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cbt-forms/internal/config"
	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
	"github.com/MKhiriev/go-cbt-forms/internal/utils"
	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the concrete implementation of [TokenService].
//
// Access tokens are stateless: once issued they stay valid until expiry and
// are verified by signature alone. Refresh tokens are revocable: every
// refresh-token operation consults the blacklist by jti.
type tokenService struct {
	// blacklist records revoked refresh tokens by jti.
	blacklist store.TokenBlacklistRepository

	// tokenSignKey is the HMAC secret used to sign and verify all tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// accessTokenDuration controls how long a newly issued access token
	// remains valid.
	accessTokenDuration time.Duration

	// refreshTokenDuration controls how long a newly issued refresh token
	// remains valid.
	refreshTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] wired to the given blacklist
// repository and populated with signing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(blacklist store.TokenBlacklistRepository, cfg config.Auth, logger *logger.Logger) TokenService {
	return &tokenService{
		blacklist:            blacklist,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		logger:               logger,
	}
}

// IssuePair mints a fresh access/refresh token pair for the user. The two
// tokens carry independent expiries and independent jti values.
func (s *tokenService) IssuePair(ctx context.Context, user models.User) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	accessToken, err := utils.GenerateJWTToken(s.tokenIssuer, user.UserID, models.TokenTypeAccess, s.accessTokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("access token generation failed")
		return models.TokenPair{}, fmt.Errorf("access token generation failed: %w", err)
	}

	refreshToken, err := utils.GenerateJWTToken(s.tokenIssuer, user.UserID, models.TokenTypeRefresh, s.refreshTokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("refresh token generation failed")
		return models.TokenPair{}, fmt.Errorf("refresh token generation failed: %w", err)
	}

	return models.TokenPair{
		Access:  accessToken.String(),
		Refresh: refreshToken.String(),
	}, nil
}

// Refresh validates the refresh token and, when it is still usable, mints a
// new access token for the same user. The refresh token is not rotated:
// it keeps working until it expires or is revoked.
//
// Returns:
//   - [ErrTokenExpired] when the refresh token's exp claim has passed.
//   - [ErrTokenMalformed] on any structural defect (signature, issuer,
//     token type, encoding).
//   - [ErrTokenRevoked] when the token's jti is blacklisted.
func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	parsed, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")
		return models.Token{}, err
	}

	revoked, err := s.blacklist.Contains(ctx, parsed.TokenID())
	if err != nil {
		log.Err(err).Str("jti", parsed.TokenID()).Msg("blacklist lookup failed")
		return models.Token{}, fmt.Errorf("blacklist lookup failed: %w", err)
	}
	if revoked {
		log.Warn().Str("jti", parsed.TokenID()).Int64("id", parsed.UserID).Msg("refresh attempt with revoked token")
		return models.Token{}, ErrTokenRevoked
	}

	accessToken, err := utils.GenerateJWTToken(s.tokenIssuer, parsed.UserID, models.TokenTypeAccess, s.accessTokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", parsed.UserID).Msg("access token generation failed")
		return models.Token{}, fmt.Errorf("access token generation failed: %w", err)
	}

	return accessToken, nil
}

// Revoke records the refresh token's jti in the blacklist. The insert is
// durable before Revoke returns, and revoking an already revoked token is a
// successful no-op.
//
// Returns [ErrTokenExpired] or [ErrTokenMalformed] when the presented token
// cannot be accepted in the first place.
func (s *tokenService) Revoke(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	parsed, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("revocation target rejected")
		return err
	}

	expiresAt := time.Now().Add(s.refreshTokenDuration)
	if parsed.Claims.ExpiresAt != nil {
		expiresAt = parsed.Claims.ExpiresAt.Time
	}

	if err := s.blacklist.Add(ctx, parsed.TokenID(), parsed.UserID, expiresAt); err != nil {
		log.Err(err).Str("jti", parsed.TokenID()).Msg("blacklist insert failed")
		return fmt.Errorf("blacklist insert failed: %w", err)
	}

	log.Info().Str("jti", parsed.TokenID()).Int64("id", parsed.UserID).Msg("refresh token revoked")
	return nil
}

// ValidateAccess verifies an access token and returns its parsed form.
// Access tokens are never checked against the blacklist: revocation applies
// to refresh tokens only, and an outstanding access token simply ages out.
func (s *tokenService) ValidateAccess(ctx context.Context, accessToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseJWTToken(accessToken, s.tokenSignKey, s.tokenIssuer, models.TokenTypeAccess)
	if err != nil {
		log.Warn().Err(err).Msg("access token rejected")
		return models.Token{}, classifyTokenError(err)
	}

	return parsed, nil
}

// parseRefreshToken validates a refresh token string and maps parse failures
// onto the service-level sentinels.
func (s *tokenService) parseRefreshToken(refreshToken string) (models.Token, error) {
	parsed, err := utils.ValidateAndParseJWTToken(refreshToken, s.tokenSignKey, s.tokenIssuer, models.TokenTypeRefresh)
	if err != nil {
		return models.Token{}, classifyTokenError(err)
	}
	return parsed, nil
}

// classifyTokenError collapses the jwt library's error taxonomy into the two
// sentinels callers care about: expired vs everything else.
func classifyTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrTokenExpired
	}
	return ErrTokenMalformed
}
