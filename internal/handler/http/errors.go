// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authorization middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// detail strings for error response bodies, matching the original API's
// wording where the original had a fixed phrase.
const (
	detailInvalidJSON       = "invalid JSON was passed"
	detailNotAuthenticated  = "authentication credentials were not provided"
	detailInvalidToken      = "given token not valid for any token type"
	detailPermissionDenied  = "you do not have permission to perform this action"
	detailNotFound          = "not found"
	detailInternalError     = "internal server error"
	detailInactiveOrDeleted = "user is inactive or deleted"
)
