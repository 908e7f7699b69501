// Package codes generates cryptographically strong tokens and codes.
package codes

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidLength = errors.New("invalid code length")
)

const (
	// IntakeTokenByteLength is the number of random bytes behind an intake
	// link token (produces 64 hex chars, 256 bits of entropy).
	IntakeTokenByteLength = 32

	// IntakeTokenLength is the length of a rendered intake link token.
	IntakeTokenLength = 2 * IntakeTokenByteLength
)

var reIntakeToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

// GenerateIntakeToken creates the opaque token for an intake link.
// Format: 64 lowercase hex characters. Uniqueness is the store's job
// (unique constraint on the token column), not the generator's.
func GenerateIntakeToken() (string, error) {
	return GenerateSecureToken(IntakeTokenByteLength)
}

// ValidIntakeToken reports whether s has the exact shape of an intake token.
// Callers must check this before any store lookup so malformed tokens never
// reach the database.
func ValidIntakeToken(s string) bool {
	return reIntakeToken.MatchString(s)
}

// GenerateSecureToken creates a cryptographically secure hex token.
// byteLength specifies the number of random bytes (output will be 2x this length in hex).
func GenerateSecureToken(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", ErrInvalidLength
	}

	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}
