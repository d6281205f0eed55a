package ports

import (
	"context"
	"time"

	"github.com/sportshop/shop-system/internal/core/domain"
)

// UserRepository is the credential-store contract.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByUsername returns domain.ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// StoreIssuedToken overwrites the user's issued-token state. The previous
	// token, if any, becomes unverifiable from this point on.
	StoreIssuedToken(ctx context.Context, username, token string, expiresAt time.Time) error
}
