package dto

import (
	"time"

	"github.com/yukikurage/recipe-api/internal/models"
	"github.com/yukikurage/recipe-api/internal/utils"
)

// RecipeDTO represents a recipe in API responses
type RecipeDTO struct {
	ID                uint64    `json:"id"`
	Title             string    `json:"title"`
	Instructions      string    `json:"instructions"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	UserID            *uint64   `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	User              *UserDTO  `json:"user,omitempty"`
}

// RecipeListResponse represents a paginated list of recipes
type RecipeListResponse struct {
	Recipes    []RecipeDTO              `json:"recipes"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// RecipeDraftDTO is an unsaved recipe suggested by the generator
type RecipeDraftDTO struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// ToRecipeDTO converts a Recipe model to RecipeDTO. The owner is included
// only when requested and preloaded, and never with its own recipes.
func ToRecipeDTO(recipe models.Recipe, includeUser bool) RecipeDTO {
	dto := RecipeDTO{
		ID:                recipe.ID,
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
		UserID:            recipe.UserID,
		CreatedAt:         recipe.CreatedAt,
	}

	if includeUser && recipe.User != nil {
		user := ToUserDTO(*recipe.User)
		dto.User = &user
	}

	return dto
}

// ToRecipeListResponse converts a page of recipes to RecipeListResponse
func ToRecipeListResponse(recipes []models.Recipe, params utils.PaginationParams, total int64) RecipeListResponse {
	items := make([]RecipeDTO, len(recipes))
	for i, recipe := range recipes {
		items[i] = ToRecipeDTO(recipe, true)
	}

	return RecipeListResponse{
		Recipes:    items,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}

// ToRecipeDraftDTO converts an unsaved recipe to RecipeDraftDTO
func ToRecipeDraftDTO(recipe models.Recipe) RecipeDraftDTO {
	return RecipeDraftDTO{
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
	}
}
