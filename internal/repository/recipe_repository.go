package repository

import (
	"strings"

	"github.com/yukikurage/recipe-api/internal/database"
	"github.com/yukikurage/recipe-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRecipeRepository is a GORM implementation of RecipeRepository
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Create creates a new recipe
func (r *GormRecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Omit(clause.Associations).Create(recipe).Error
}

// FindByID finds a recipe by ID with optional preloading
func (r *GormRecipeRepository) FindByID(id uint64, preload ...string) (*models.Recipe, error) {
	var recipe models.Recipe
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&recipe, id).Error; err != nil {
		return nil, err
	}

	return &recipe, nil
}

// List retrieves recipes with filtering and pagination
func (r *GormRecipeRepository) List(filter RecipeFilter) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe

	query := r.db.Model(&models.Recipe{})

	if filter.UserID != nil {
		query = query.Where("recipes.user_id = ?", *filter.UserID)
	}
	if title := strings.TrimSpace(filter.Title); title != "" {
		query = query.Where("LOWER(recipes.title) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(title))+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("recipes.created_at DESC").Order("recipes.id DESC")
	if filter.Pagination.Limit > 0 {
		listQuery = listQuery.Scopes(database.Paginate(filter.Pagination))
	}

	if err := listQuery.Preload("User").Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// Update saves a recipe's fields without touching its owner row
func (r *GormRecipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Omit(clause.Associations).Save(recipe).Error
}

// Delete deletes a recipe
func (r *GormRecipeRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Recipe{}, id).Error
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike makes s match literally inside a LIKE pattern using '!' as the escape character
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
