package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yukikurage/recipe-api/internal/constants"
	"gorm.io/gorm"
)

// Recipe is a piece of content owned by at most one user. Title and
// Instructions should be assigned through SetTitle and SetInstructions;
// BeforeSave validates them again so an invalid recipe never reaches the
// database.
type Recipe struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	Title             string    `gorm:"type:varchar(255);not null" json:"title"`
	Instructions      string    `gorm:"type:text;not null" json:"instructions"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	UserID            *uint64   `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// NewRecipe builds a recipe, applying the same checks as the setters.
func NewRecipe(title, instructions string, minutesToComplete *int) (*Recipe, error) {
	r := &Recipe{MinutesToComplete: minutesToComplete}
	if err := r.SetTitle(title); err != nil {
		return nil, err
	}
	if err := r.SetInstructions(instructions); err != nil {
		return nil, err
	}
	return r, nil
}

// SetTitle assigns title unless it is empty or all whitespace. The stored
// value is not trimmed.
func (r *Recipe) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	r.Title = title
	return nil
}

// SetInstructions assigns instructions unless they are shorter than
// constants.MinInstructionsLength characters.
func (r *Recipe) SetInstructions(instructions string) error {
	if err := validateInstructions(instructions); err != nil {
		return err
	}
	r.Instructions = instructions
	return nil
}

// SetOwner points the recipe at user, keeping UserID and User in step.
// A nil user leaves the recipe unowned.
func (r *Recipe) SetOwner(user *User) {
	if user == nil {
		r.UserID = nil
		r.User = nil
		return
	}
	id := user.ID
	r.UserID = &id
	r.User = user
}

// OwnedBy reports whether userID owns the recipe.
func (r *Recipe) OwnedBy(userID uint64) bool {
	return r.UserID != nil && *r.UserID == userID
}

// Validate re-checks every constrained field.
func (r *Recipe) Validate() error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	return validateInstructions(r.Instructions)
}

// BeforeSave rejects invalid recipes before they are written.
func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "cannot be empty")
	}
	return nil
}

func validateInstructions(instructions string) error {
	if utf8.RuneCountInString(instructions) < constants.MinInstructionsLength {
		return NewValidationError("instructions",
			fmt.Sprintf("must be at least %d characters long", constants.MinInstructionsLength))
	}
	return nil
}
