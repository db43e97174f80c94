package port

import (
	"context"

	"github.com/campusgo/campus-market/internal/core/domain"
)

type UserRepository interface {
	// CreateUser inserts a user and returns the generated id.
	// Returns domain.ErrDuplicateUsername if the username is taken.
	CreateUser(ctx context.Context, username, passwordHash, email string) (int64, error)

	// GetUserByUsername returns the stored user or domain.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
