package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/recipe-api/internal/errors"
	"github.com/yukikurage/recipe-api/internal/models"
	"github.com/yukikurage/recipe-api/internal/services"
)

const contextKeyRecipe = "recipe"

// RequireRecipeAccess loads the recipe named by the :id parameter into the context
func RequireRecipeAccess(recipeService *services.RecipeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid recipe ID")
			return
		}

		recipe, err := recipeService.GetRecipe(recipeID)
		if err != nil {
			if errors.Is(err, services.ErrRecipeNotFound) {
				apierrors.NotFound(c, "Recipe not found")
				return
			}
			apierrors.InternalError(c, "")
			return
		}

		c.Set(contextKeyRecipe, recipe)
		c.Next()
	}
}

// RequireRecipeOwner rejects users who do not own the loaded recipe.
// Unowned recipes cannot be changed by anyone.
func RequireRecipeOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		recipe, ok := GetRecipe(c)
		if !ok {
			apierrors.InternalError(c, "Recipe not loaded")
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		if !recipe.OwnedBy(userID) {
			apierrors.NotOwner(c, "Only the recipe owner can perform this action")
			return
		}

		c.Next()
	}
}

// GetRecipe retrieves the recipe stored by RequireRecipeAccess
func GetRecipe(c *gin.Context) (*models.Recipe, bool) {
	value, exists := c.Get(contextKeyRecipe)
	if !exists {
		return nil, false
	}
	recipe, ok := value.(*models.Recipe)
	return recipe, ok
}
