package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/recipe-api/internal/constants"
	"github.com/yukikurage/recipe-api/internal/models"
	"github.com/yukikurage/recipe-api/internal/repository"
	"github.com/yukikurage/recipe-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound         = errors.New("recipe not found")
	ErrNotRecipeOwner         = errors.New("only the recipe owner can perform this action")
	ErrDishRequired           = errors.New("dish is required")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoValidRecipe        = errors.New("no valid recipe could be created from AI output")
)

// RecipeService handles recipe business logic
type RecipeService struct {
	recipeRepo repository.RecipeRepository
	userRepo   repository.UserRepository
	generator  RecipeGenerator
}

// NewRecipeService creates a new RecipeService. generator may be nil.
func NewRecipeService(recipeRepo repository.RecipeRepository, userRepo repository.UserRepository, generator RecipeGenerator) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
		generator:  generator,
	}
}

// ListRecipesInput represents filters for listing recipes
type ListRecipesInput struct {
	UserID     *uint64
	Title      string
	Pagination utils.PaginationParams
}

// CreateRecipeInput represents input for creating a recipe
type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete *int
	OwnerID           uint64
}

// UpdateRecipeInput represents input for updating a recipe
type UpdateRecipeInput struct {
	Title             *string
	Instructions      *string
	MinutesToComplete *int
	ClearMinutes      bool
}

// ListRecipes returns a page of recipes matching the filters
func (s *RecipeService) ListRecipes(input ListRecipesInput) ([]models.Recipe, int64, error) {
	recipes, total, err := s.recipeRepo.List(repository.RecipeFilter{
		UserID:     input.UserID,
		Title:      input.Title,
		Pagination: input.Pagination,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}

	return recipes, total, nil
}

// GetRecipe returns a recipe with its owner
func (s *RecipeService) GetRecipe(recipeID uint64) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(recipeID, "User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}

	return recipe, nil
}

// CreateRecipe validates and stores a new recipe owned by input.OwnerID
func (s *RecipeService) CreateRecipe(input CreateRecipeInput) (*models.Recipe, error) {
	recipe, err := models.NewRecipe(input.Title, input.Instructions, input.MinutesToComplete)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByID(input.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}
	recipe.SetOwner(owner)

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return recipe, nil
}

// UpdateRecipe applies a partial update if the actor owns the recipe.
// Nothing is stored unless every changed field is valid.
func (s *RecipeService) UpdateRecipe(recipeID, actorID uint64, input UpdateRecipeInput) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(recipeID)
	if err != nil {
		return nil, err
	}

	if !recipe.OwnedBy(actorID) {
		return nil, ErrNotRecipeOwner
	}

	if input.Title != nil {
		if err := recipe.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Instructions != nil {
		if err := recipe.SetInstructions(*input.Instructions); err != nil {
			return nil, err
		}
	}
	if input.ClearMinutes {
		recipe.MinutesToComplete = nil
	} else if input.MinutesToComplete != nil {
		recipe.MinutesToComplete = input.MinutesToComplete
	}

	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return recipe, nil
}

// DeleteRecipe deletes a recipe if the actor owns it
func (s *RecipeService) DeleteRecipe(recipeID, actorID uint64) error {
	recipe, err := s.recipeRepo.FindByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return fmt.Errorf("failed to find recipe: %w", err)
	}

	if !recipe.OwnedBy(actorID) {
		return ErrNotRecipeOwner
	}

	if err := s.recipeRepo.Delete(recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	return nil
}

// GenerateRecipe drafts an unsaved recipe for dish. The draft passes the
// same validation as a stored recipe.
func (s *RecipeService) GenerateRecipe(ctx context.Context, dish string) (*models.Recipe, error) {
	if s.generator == nil {
		return nil, ErrAIServiceNotConfigured
	}

	dish = strings.TrimSpace(dish)
	if dish == "" {
		return nil, ErrDishRequired
	}

	generated, err := s.generator.GenerateRecipe(ctx, dish)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipe: %w", err)
	}

	minutes := generated.MinutesToComplete
	if minutes != nil && (*minutes <= 0 || *minutes > constants.MaxGeneratedMinutes) {
		minutes = nil
	}

	recipe, err := models.NewRecipe(generated.Title, generated.Instructions, minutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAINoValidRecipe, err)
	}

	return recipe, nil
}
