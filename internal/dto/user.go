package dto

import "github.com/yukikurage/recipe-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

// UserDetailDTO represents a user together with their recipes
type UserDetailDTO struct {
	UserDTO
	Recipes []RecipeDTO `json:"recipes"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		Bio:      user.Bio,
	}
}

// ToUserDetailDTO converts a User with preloaded recipes. Nested recipes
// never carry their user back.
func ToUserDetailDTO(user models.User) UserDetailDTO {
	recipes := make([]RecipeDTO, len(user.Recipes))
	for i, recipe := range user.Recipes {
		recipes[i] = ToRecipeDTO(recipe, false)
	}

	return UserDetailDTO{
		UserDTO: ToUserDTO(user),
		Recipes: recipes,
	}
}
