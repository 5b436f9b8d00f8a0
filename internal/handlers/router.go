package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/recipe-api/internal/middleware"
	"github.com/yukikurage/recipe-api/internal/services"
)

// RouterDeps holds everything the HTTP layer needs
type RouterDeps struct {
	AuthService   *services.AuthService
	RecipeService *services.RecipeService
	SessionStore  sessions.Store
}

// NewRouter builds the gin engine with all API routes registered
func NewRouter(deps RouterDeps, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.Use(middleware.Sessions(deps.SessionStore))

	authHandler := NewAuthHandler(deps.AuthService)
	userHandler := NewUserHandler(deps.AuthService)
	recipeHandler := NewRecipeHandler(deps.RecipeService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Recipe API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.DELETE("/logout", middleware.RequireAuth(), authHandler.Logout)
			auth.GET("/check_session", middleware.RequireAuth(), authHandler.CheckSession)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth())
		{
			users.PATCH("/me", userHandler.UpdateCurrentUser)
			users.PUT("/me/password", userHandler.ChangePassword)
			users.DELETE("/me", userHandler.DeleteCurrentUser)
			users.GET("/:id", userHandler.GetUser)
		}

		// Recipe routes (protected)
		recipes := api.Group("/recipes")
		recipes.Use(middleware.RequireAuth())
		{
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.POST("/generate", recipeHandler.GenerateRecipe)
			recipes.GET("/:id", middleware.RequireRecipeAccess(deps.RecipeService), recipeHandler.GetRecipe)
			recipes.PATCH("/:id", middleware.RequireRecipeAccess(deps.RecipeService), middleware.RequireRecipeOwner(), recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", middleware.RequireRecipeAccess(deps.RecipeService), middleware.RequireRecipeOwner(), recipeHandler.DeleteRecipe)
		}
	}

	return r
}
