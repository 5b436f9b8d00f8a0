// Package password hashes and verifies user secrets.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxSecretBytes is the longest secret bcrypt hashes in full.
const MaxSecretBytes = 72

// Hasher produces and checks one-way salted hashes of secrets.
type Hasher interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(secret string) (string, error)

	// Check reports whether secret matches hash.
	Check(secret, hash string) bool
}

// BcryptHasher is a bcrypt implementation of Hasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher. Costs outside bcrypt's accepted
// range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash hashes secret with the configured cost.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Check compares secret against a bcrypt hash. Any mismatch, malformed
// hash or secret longer than MaxSecretBytes yields false.
func (h *BcryptHasher) Check(secret, hash string) bool {
	if len(secret) > MaxSecretBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
