package services

import (
	"errors"
	"fmt"

	"contacts-api/internal/models"
	"contacts-api/internal/repository"
	"contacts-api/internal/token"
	"contacts-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles registration and authentication business logic.
type AuthService struct {
	userRepo repository.UserRepository
	issuer   *token.Issuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, issuer *token.Issuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Fullname string
	Email    string
	Password string
}

// Register creates a new user with a hashed password. The email must not
// belong to an existing user; the check is a plain query, so two concurrent
// registrations with the same email can both pass it.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Fullname:       input.Fullname,
		Email:          input.Email,
		HashedPassword: hashed,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns a signed access token. A missing
// user and a wrong password are reported identically.
func (s *AuthService) Login(input LoginInput) (string, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !utils.CheckPassword(input.Password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	accessToken, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return accessToken, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
