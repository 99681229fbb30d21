package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token type discriminator values carried in the "token_type" claim.
// Access and refresh tokens share the signing key and issuer but are never
// interchangeable: validation always checks the declared type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the claim set embedded in every issued JWT.
//
// It extends the standard registered claims (sub, exp, iat, iss, jti) with a
// token type discriminator so that a refresh token can never be presented
// where an access token is expected and vice versa.
type TokenClaims struct {
	// TokenType is either [TokenTypeAccess] or [TokenTypeRefresh].
	TokenType string `json:"token_type"`

	jwt.RegisteredClaims
}

// Token wraps a parsed or freshly issued JWT with convenience accessors
// used by the authentication flow.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// response bodies. UserID is a cached, parsed copy of the "sub" claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// TokenPair bundles the access and refresh tokens returned by the token
// endpoint. The JSON field names match the original API contract.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString := t.Claims.Subject
	if userIDString == "" {
		return 0, fmt.Errorf("token has empty subject claim")
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to int64: %w", err)
	}

	return userID, nil
}

// TokenID returns the "jti" claim identifying this token instance.
// Refresh tokens always carry a jti; it is the key recorded in the
// blacklist on revocation.
func (t *Token) TokenID() string {
	return t.Claims.ID
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
