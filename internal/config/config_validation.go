// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values applied by [StructuredConfig.applyDefaults] for fields the
// operator did not set through any configuration source.
const (
	DefaultHTTPAddress            = ":8080"
	DefaultTokenIssuer            = "go-cbt-forms"
	DefaultAccessTokenDuration    = 15 * time.Minute
	DefaultRefreshTokenDuration   = 7 * 24 * time.Hour
	DefaultRequestTimeout         = 30 * time.Second
	DefaultBlacklistPurgeInterval = time.Hour
)

// applyDefaults fills zero-valued optional fields with their fallback values.
// Required fields (database DSN, token sign key) have no defaults and are
// checked by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.AccessTokenDuration == 0 {
		cfg.Auth.AccessTokenDuration = DefaultAccessTokenDuration
	}
	if cfg.Auth.RefreshTokenDuration == 0 {
		cfg.Auth.RefreshTokenDuration = DefaultRefreshTokenDuration
	}
	if cfg.Workers.BlacklistPurgeInterval == 0 {
		cfg.Workers.BlacklistPurgeInterval = DefaultBlacklistPurgeInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.AccessTokenDuration >= cfg.Auth.RefreshTokenDuration {
		return ErrInvalidAuthConfigs
	}

	return nil
}
