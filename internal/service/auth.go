package service

import (
	"context"

	"github.com/avakimov/fleetdeck/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u models.User) (*models.User, error)
}

// AuthService implements user registration and credential checks.
// Passwords are stored as bcrypt hashes only.
type AuthService struct {
	repo UserRepository
}

// NewAuthService constructs an AuthService using the provided repository.
func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// UserExists returns true if a user with the given username exists.
func (s *AuthService) UserExists(ctx context.Context, username string) (bool, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ValidationError("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

// Authenticate checks the given credentials. It returns the user on a
// match and nil when the user is unknown or the password is wrong.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return u, nil
}
