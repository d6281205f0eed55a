package ports

import (
	"context"

	"github.com/sportshop/shop-system/internal/core/domain"
)

// SessionStore persists per-caller sessions keyed by session id.
type SessionStore interface {
	// Create stores a new session with the configured lifetime.
	Create(ctx context.Context, session *domain.Session) error

	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Save overwrites an existing session (cart updates, credential purge)
	// without extending its lifetime.
	Save(ctx context.Context, session *domain.Session) error

	// Delete removes the session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
