package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the bcrypt work factor used when no explicit cost is
// configured. A cost of 12 keeps hashing time reasonable while remaining
// expensive enough for offline attacks.
const DefaultBcryptCost = 12

// HashPassword derives a bcrypt hash from the given plaintext password.
//
// A cost of 0 selects [DefaultBcryptCost]. The resulting hash embeds its own
// salt and cost, so it can be verified later with [CheckPassword] alone.
//
// Returns an error if the password exceeds bcrypt's 72-byte input limit or
// the cost is out of range.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison runs in time dependent only on the hash cost,
// not on where the inputs diverge.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
