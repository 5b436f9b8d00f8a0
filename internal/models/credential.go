package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/yukikurage/recipe-api/internal/password"
)

// Credential stores the one-way hash of a user's secret. The hash can be
// replaced and checked but never read back; it only leaves the type when
// written to the database.
type Credential struct {
	hash string
}

// Set validates secret, hashes it and replaces any existing hash.
// A blank secret is rejected and the existing hash is kept.
func (c *Credential) Set(hasher password.Hasher, secret string) error {
	if strings.TrimSpace(secret) == "" {
		return NewValidationError("password", "cannot be empty")
	}
	if len(secret) > password.MaxSecretBytes {
		return NewValidationError("password",
			fmt.Sprintf("must be at most %d bytes", password.MaxSecretBytes))
	}

	hashed, err := hasher.Hash(secret)
	if err != nil {
		return err
	}
	c.hash = hashed
	return nil
}

// Verify reports whether candidate matches the stored hash. It is false
// when no hash has been set.
func (c Credential) Verify(hasher password.Hasher, candidate string) bool {
	if c.hash == "" {
		return false
	}
	return hasher.Check(candidate, c.hash)
}

// IsSet reports whether a hash is stored.
func (c Credential) IsSet() bool {
	return c.hash != ""
}

// Value implements driver.Valuer. An unset credential is stored as NULL.
func (c Credential) Value() (driver.Value, error) {
	if c.hash == "" {
		return nil, nil
	}
	return c.hash, nil
}

// Scan implements sql.Scanner.
func (c *Credential) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		c.hash = ""
	case string:
		c.hash = v
	case []byte:
		c.hash = string(v)
	default:
		return fmt.Errorf("credential: unsupported scan type %T", src)
	}
	return nil
}

// String never exposes the hash.
func (c Credential) String() string {
	if c.hash == "" {
		return "<unset>"
	}
	return "<redacted>"
}
