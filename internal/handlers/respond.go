package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/recipe-api/internal/errors"
	"github.com/yukikurage/recipe-api/internal/models"
	"github.com/yukikurage/recipe-api/internal/services"
)

// respondServiceError maps service and model errors to API error responses
func respondServiceError(c *gin.Context, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		apierrors.UnprocessableEntity(c, validationErr.Error(), gin.H{"field": validationErr.Field})
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRecipeNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotRecipeOwner):
		apierrors.NotOwner(c, err.Error())
	case errors.Is(err, services.ErrDishRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, "AI service is not configured. Please set OPENAI_API_KEY environment variable.")
	case errors.Is(err, services.ErrAINoValidRecipe):
		apierrors.BadGateway(c, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		apierrors.InternalError(c, "")
	}
}
