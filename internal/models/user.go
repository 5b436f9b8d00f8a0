package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yukikurage/recipe-api/internal/constants"
	"github.com/yukikurage/recipe-api/internal/password"
	"gorm.io/gorm"
)

type User struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	Username   string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Credential Credential `gorm:"column:password_hash;type:varchar(255)" json:"-"`
	ImageURL   string     `gorm:"type:varchar(2048)" json:"image_url"`
	Bio        string     `gorm:"type:text" json:"bio"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relations
	Recipes []Recipe `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

// SetPassword hashes secret into the user's credential.
func (u *User) SetPassword(hasher password.Hasher, secret string) error {
	return u.Credential.Set(hasher, secret)
}

// Authenticate reports whether candidate matches the stored credential.
func (u *User) Authenticate(hasher password.Hasher, candidate string) bool {
	return u.Credential.Verify(hasher, candidate)
}

// Validate checks the fields the database cannot.
func (u *User) Validate() error {
	username := strings.TrimSpace(u.Username)
	if username == "" {
		return NewValidationError("username", "cannot be empty")
	}
	if n := utf8.RuneCountInString(username); n < constants.MinUsernameLength || n > constants.MaxUsernameLength {
		return NewValidationError("username",
			fmt.Sprintf("must be between %d and %d characters long", constants.MinUsernameLength, constants.MaxUsernameLength))
	}
	return nil
}

// BeforeSave rejects invalid users before they are written.
func (u *User) BeforeSave(tx *gorm.DB) error {
	return u.Validate()
}
