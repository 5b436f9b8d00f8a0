package repository

import (
	"github.com/yukikurage/recipe-api/internal/models"
	"github.com/yukikurage/recipe-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Update saves a user's fields
	Update(user *models.User) error

	// Delete deletes a user, leaving their recipes unowned
	Delete(id uint64) error
}

// RecipeRepository defines the interface for recipe data access
type RecipeRepository interface {
	// Create creates a new recipe
	Create(recipe *models.Recipe) error

	// FindByID finds a recipe by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Recipe, error)

	// List retrieves recipes with filtering and pagination
	List(filter RecipeFilter) ([]models.Recipe, int64, error)

	// Update saves a recipe's fields
	Update(recipe *models.Recipe) error

	// Delete deletes a recipe
	Delete(id uint64) error
}

// RecipeFilter holds filtering options for listing recipes
type RecipeFilter struct {
	UserID     *uint64
	Title      string
	Pagination utils.PaginationParams
}
