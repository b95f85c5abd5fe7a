package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. The iteration count is the deliberate per-call cost
// factor; changing it invalidates every stored hash.
const (
	hashIterations = 100_000
	hashKeyLen     = 32
	saltBytes      = 32
)

// NewSalt returns a fresh hex-encoded random salt.
func NewSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword derives a hex-encoded PBKDF2-SHA256 digest of password
// under the given hex-encoded salt.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), hashIterations, hashKeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword reports whether password matches the stored digest.
// Comparison is constant-time.
func VerifyPassword(password, salt, storedHash string) bool {
	derived := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(storedHash)) == 1
}
