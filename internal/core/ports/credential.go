package ports

import (
	"context"

	"github.com/sportshop/shop-system/internal/core/domain"
)

// CredentialIssuer produces a credential asserting an already-verified
// identity. Implementations decide what a credential is: a signed token or a
// plain session marker.
type CredentialIssuer interface {
	Issue(ctx context.Context, user *domain.User) (string, error)
}

// CredentialVerifier validates a presented credential and returns its
// subject (the username). Every rejection is domain.ErrNotAuthenticated;
// there are no distinct failure codes.
type CredentialVerifier interface {
	Verify(ctx context.Context, credential string) (string, error)
}
