package ports

import (
	"context"

	"github.com/sportshop/shop-system/internal/core/domain"
)

type AuthService interface {
	// Register creates an account. It never authenticates: the caller must
	// log in separately.
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// Login verifies the password and returns a freshly issued credential
	// together with the user. Issuing the credential invalidates any
	// previously issued one for this user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
