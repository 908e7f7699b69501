// Package crypto provides hashing helpers for storing secrets at rest.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the SHA-256 hex digest of s. Used for refresh-token storage so
// a database leak never exposes usable tokens.
func Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
