package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/recipe-api/internal/models"
	"github.com/yukikurage/recipe-api/internal/password"
	"github.com/yukikurage/recipe-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrFailedToCreateUser = errors.New("failed to create user")
)

// AuthService handles signup, login and account business logic.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, hasher password.Hasher, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Username string
	Password string
	ImageURL string
	Bio      string
}

// Signup creates a new user with a hashed password.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	user := &models.User{
		Username: strings.TrimSpace(input.Username),
		ImageURL: input.ImageURL,
		Bio:      input.Bio,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := user.SetPassword(s.hasher, input.Password); err != nil {
		if errors.Is(err, models.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToCreateUser, err)
	}

	if _, err := s.userRepo.FindByUsername(user.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToCreateUser, err)
	}

	s.logger.Info("user signed up", "user_id", user.ID)
	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.Authenticate(s.hasher, input.Password) {
		s.logger.Warn("failed login attempt", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID along with their recipes.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id, "Recipes")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfileInput represents the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	ImageURL *string
	Bio      *string
}

// UpdateProfile updates a user's image and bio.
func (s *AuthService) UpdateProfile(id uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.ImageURL != nil {
		user.ImageURL = *input.ImageURL
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// ChangePassword replaces a user's password after checking the current one.
func (s *AuthService) ChangePassword(id uint64, current, next string) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if !user.Authenticate(s.hasher, current) {
		return ErrInvalidCredentials
	}
	if err := user.SetPassword(s.hasher, next); err != nil {
		return err
	}

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password changed", "user_id", user.ID)
	return nil
}

// DeleteUser deletes a user. Their recipes remain, without an owner.
func (s *AuthService) DeleteUser(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
