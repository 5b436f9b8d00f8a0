package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/recipe-api/internal/database"
	"github.com/yukikurage/recipe-api/internal/models"
	"github.com/yukikurage/recipe-api/internal/password"
	"github.com/yukikurage/recipe-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db         *gorm.DB
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
	service    *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = database.OpenInMemory()
	suite.Require().NoError(err)

	suite.userRepo = repository.NewUserRepository(suite.db)
	suite.recipeRepo = repository.NewRecipeRepository(suite.db)
	suite.service = NewAuthService(suite.userRepo, password.NewBcryptHasher(bcrypt.MinCost), nil)
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthServiceTestSuite) TestSignupAndLogin() {
	user, err := suite.service.Signup(SignupInput{
		Username: "  chef1 ",
		Password: "hunter22",
		ImageURL: "https://example.com/chef.png",
		Bio:      "I cook",
	})
	suite.Require().NoError(err)
	suite.NotZero(user.ID)
	suite.Equal("chef1", user.Username)

	loggedIn, err := suite.service.Login(LoginInput{Username: "chef1", Password: "hunter22"})
	suite.Require().NoError(err)
	suite.Equal(user.ID, loggedIn.ID)

	_, err = suite.service.Login(LoginInput{Username: "chef1", Password: "wrong"})
	suite.ErrorIs(err, ErrInvalidCredentials)

	_, err = suite.service.Login(LoginInput{Username: "nobody", Password: "hunter22"})
	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestSignupStoresHashNotSecret() {
	_, err := suite.service.Signup(SignupInput{Username: "chef1", Password: "hunter22"})
	suite.Require().NoError(err)

	var stored string
	suite.Require().NoError(suite.db.Raw("SELECT password_hash FROM users WHERE username = ?", "chef1").Scan(&stored).Error)
	suite.NotEmpty(stored)
	suite.NotContains(stored, "hunter22")
	suite.True(strings.HasPrefix(stored, "$2"))
}

func (suite *AuthServiceTestSuite) TestSignupValidation() {
	_, err := suite.service.Signup(SignupInput{Username: "   ", Password: "hunter22"})
	suite.ErrorIs(err, models.ErrValidation)

	_, err = suite.service.Signup(SignupInput{Username: "chef1", Password: "   "})
	suite.ErrorIs(err, models.ErrValidation)

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	suite.Zero(count)
}

func (suite *AuthServiceTestSuite) TestSignupDuplicateUsername() {
	_, err := suite.service.Signup(SignupInput{Username: "chef1", Password: "hunter22"})
	suite.Require().NoError(err)

	_, err = suite.service.Signup(SignupInput{Username: "chef1", Password: "another"})
	suite.ErrorIs(err, ErrUsernameTaken)
}

func (suite *AuthServiceTestSuite) TestUniqueConstraintEnforcedByStorage() {
	first := &models.User{Username: "chef1"}
	suite.Require().NoError(suite.userRepo.Create(first))

	err := suite.userRepo.Create(&models.User{Username: "chef1"})
	suite.Require().Error(err)
	suite.ErrorIs(err, repository.ErrDuplicateUsername)
}

func (suite *AuthServiceTestSuite) TestUserWithoutCredentialCannotLogin() {
	suite.Require().NoError(suite.userRepo.Create(&models.User{Username: "fixture"}))

	_, err := suite.service.Login(LoginInput{Username: "fixture", Password: ""})
	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestGetUserIncludesRecipes() {
	user, err := suite.service.Signup(SignupInput{Username: "chef1", Password: "hunter22"})
	suite.Require().NoError(err)

	recipe, err := models.NewRecipe("Toast", strings.Repeat("t", 50), nil)
	suite.Require().NoError(err)
	recipe.SetOwner(user)
	suite.Require().NoError(suite.recipeRepo.Create(recipe))

	loaded, err := suite.service.GetUser(user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Recipes, 1)
	suite.Equal("Toast", loaded.Recipes[0].Title)

	_, err = suite.service.GetUser(9999)
	suite.ErrorIs(err, ErrUserNotFound)
}

func (suite *AuthServiceTestSuite) TestUpdateProfile() {
	user, err := suite.service.Signup(SignupInput{Username: "chef1", Password: "hunter22", Bio: "old"})
	suite.Require().NoError(err)

	bio := "new bio"
	updated, err := suite.service.UpdateProfile(user.ID, UpdateProfileInput{Bio: &bio})
	suite.Require().NoError(err)
	suite.Equal("new bio", updated.Bio)

	// The password survives a profile update.
	_, err = suite.service.Login(LoginInput{Username: "chef1", Password: "hunter22"})
	suite.NoError(err)
}

func (suite *AuthServiceTestSuite) TestChangePassword() {
	user, err := suite.service.Signup(SignupInput{Username: "chef1", Password: "hunter22"})
	suite.Require().NoError(err)

	suite.ErrorIs(suite.service.ChangePassword(user.ID, "wrong", "new-secret"), ErrInvalidCredentials)
	suite.ErrorIs(suite.service.ChangePassword(user.ID, "hunter22", "  "), models.ErrValidation)

	_, err = suite.service.Login(LoginInput{Username: "chef1", Password: "hunter22"})
	suite.Require().NoError(err, "failed change must keep the old password")

	suite.Require().NoError(suite.service.ChangePassword(user.ID, "hunter22", "new-secret"))

	_, err = suite.service.Login(LoginInput{Username: "chef1", Password: "hunter22"})
	suite.ErrorIs(err, ErrInvalidCredentials)
	_, err = suite.service.Login(LoginInput{Username: "chef1", Password: "new-secret"})
	suite.NoError(err)
}

func (suite *AuthServiceTestSuite) TestDeleteUserKeepsRecipes() {
	user, err := suite.service.Signup(SignupInput{Username: "chef1", Password: "hunter22"})
	suite.Require().NoError(err)

	recipe, err := models.NewRecipe("Toast", strings.Repeat("t", 50), nil)
	suite.Require().NoError(err)
	recipe.SetOwner(user)
	suite.Require().NoError(suite.recipeRepo.Create(recipe))

	suite.Require().NoError(suite.service.DeleteUser(user.ID))
	suite.ErrorIs(suite.service.DeleteUser(user.ID), ErrUserNotFound)

	orphan, err := suite.recipeRepo.FindByID(recipe.ID)
	suite.Require().NoError(err)
	suite.Nil(orphan.UserID)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

type brokenHasher struct {
	err error
}

func (h brokenHasher) Hash(string) (string, error) { return "", h.err }

func (h brokenHasher) Check(string, string) bool { return false }

func (suite *AuthServiceTestSuite) TestSignupKeepsUnderlyingCause() {
	cause := errors.New("hasher unavailable")
	service := NewAuthService(suite.userRepo, brokenHasher{err: cause}, nil)

	_, err := service.Signup(SignupInput{Username: "chef1", Password: "hunter22"})
	suite.ErrorIs(err, ErrFailedToCreateUser)
	suite.ErrorIs(err, cause)
}

func (suite *AuthServiceTestSuite) TestPasswordLengthLimit() {
	longest := strings.Repeat("p", password.MaxSecretBytes)

	_, err := suite.service.Signup(SignupInput{Username: "chef1", Password: longest + "x"})
	suite.ErrorIs(err, models.ErrValidation)

	user, err := suite.service.Signup(SignupInput{Username: "chef1", Password: longest})
	suite.Require().NoError(err)

	_, err = suite.service.Login(LoginInput{Username: "chef1", Password: longest + "x"})
	suite.ErrorIs(err, ErrInvalidCredentials)

	err = suite.service.ChangePassword(user.ID, longest, longest+"y")
	suite.ErrorIs(err, models.ErrValidation)
	_, err = suite.service.Login(LoginInput{Username: "chef1", Password: longest})
	suite.NoError(err)
}
