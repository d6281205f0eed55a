package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sportshop/shop-system/internal/core/domain"
)

// SessionStore persists sessions in Redis as JSON blobs.
// Key format: session:<id>, expiring after the configured TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultSessionTTL = 30 * time.Minute

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, s.key(session.ID), blob, s.ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	blob, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(blob, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Save overwrites the session blob keeping the remaining TTL: updating the
// cart does not extend the session's life.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, s.key(session.ID), blob, redis.KeepTTL).Err()
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

func (s *SessionStore) key(id string) string {
	return fmt.Sprintf("session:%s", id)
}
