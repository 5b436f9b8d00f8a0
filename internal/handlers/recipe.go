package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/recipe-api/internal/dto"
	apierrors "github.com/yukikurage/recipe-api/internal/errors"
	"github.com/yukikurage/recipe-api/internal/middleware"
	"github.com/yukikurage/recipe-api/internal/services"
	"github.com/yukikurage/recipe-api/internal/utils"
)

type RecipeHandler struct {
	recipeService *services.RecipeService
}

func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// ListRecipes returns a page of recipes.
// Can filter by user_id, mine=true or a title search in q
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	input := services.ListRecipesInput{
		Title:      c.Query("q"),
		Pagination: utils.GetPaginationParams(c),
	}

	if c.Query("mine") == "true" {
		input.UserID = &userID
	} else if ownerIDStr := c.Query("user_id"); ownerIDStr != "" {
		ownerID, err := strconv.ParseUint(ownerIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user_id")
			return
		}
		input.UserID = &ownerID
	}

	recipes, total, err := h.recipeService.ListRecipes(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeListResponse(recipes, input.Pagination, total))
}

// CreateRecipe creates a recipe owned by the current user
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateRecipeRequest struct {
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete *int   `json:"minutes_to_complete" binding:"omitempty,min=0"`
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	recipe, err := h.recipeService.CreateRecipe(services.CreateRecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
		OwnerID:           userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecipeDTO(*recipe, true))
}

// GetRecipe returns the recipe loaded by RequireRecipeAccess with its owner
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, ok := middleware.GetRecipe(c)
	if !ok {
		apierrors.NotFound(c, "Recipe not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeDTO(*recipe, true))
}

// UpdateRecipe applies a partial update to a recipe
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	recipe, ok := middleware.GetRecipe(c)
	if !ok {
		apierrors.NotFound(c, "Recipe not found")
		return
	}

	type UpdateRecipeRequest struct {
		Title             *string `json:"title"`
		Instructions      *string `json:"instructions"`
		MinutesToComplete *int    `json:"minutes_to_complete" binding:"omitempty,min=0"`
		ClearMinutes      bool    `json:"clear_minutes_to_complete"`
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.recipeService.UpdateRecipe(recipe.ID, userID, services.UpdateRecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
		ClearMinutes:      req.ClearMinutes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeDTO(*updated, true))
}

// DeleteRecipe deletes a recipe
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	recipe, ok := middleware.GetRecipe(c)
	if !ok {
		apierrors.NotFound(c, "Recipe not found")
		return
	}

	if err := h.recipeService.DeleteRecipe(recipe.ID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateRecipe drafts an unsaved recipe for a dish using AI
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	type GenerateRecipeRequest struct {
		Dish string `json:"dish" binding:"required,max=200"`
	}

	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.recipeService.GenerateRecipe(c.Request.Context(), req.Dish)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe": dto.ToRecipeDraftDTO(*draft),
	})
}
