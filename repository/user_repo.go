package repository

import (
	"context"
	"strings"

	"jobportal/models"
)

// UserRepository stores accounts keyed by their normalized email.
// GetUserByEmail returns (nil, nil) when no account matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	SetImagePath(ctx context.Context, email, path string) error
	DeleteUser(ctx context.Context, email string) error
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
