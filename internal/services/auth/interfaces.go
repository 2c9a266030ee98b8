package auth

import (
	"context"

	"github.com/artefakt/archive-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// Service defines the interface for authentication
type Service interface {
	// Login verifies credentials and returns a signed token
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	// ValidateToken parses and verifies a bearer token
	ValidateToken(token string) (*Claims, error)
	// Register creates a user with a hashed password
	Register(ctx context.Context, email, password string) (*models.User, error)
	// CurrentUser resolves the user behind validated claims
	CurrentUser(ctx context.Context, claims *Claims) (*models.User, error)
}
