package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sportshop/shop-system/internal/core/domain"
	"github.com/sportshop/shop-system/internal/core/ports"
)

// Claims are the assertions embedded in an issued token: subject (username),
// issued-at and expiry.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenIssuer produces signed HS256 tokens and persists each one on the user
// record together with its expiry. Writes are serialized per username so two
// concurrent logins cannot lose an update on the stored token.
type TokenIssuer struct {
	repo   ports.UserRepository
	secret []byte
	ttl    time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTokenIssuer(repo ports.UserRepository, secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenIssuer{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (i *TokenIssuer) Issue(ctx context.Context, user *domain.User) (string, error) {
	lock := i.userLock(user.Username)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()
	expiresAt := now.Add(i.ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", err
	}

	if err := i.repo.StoreIssuedToken(ctx, user.Username, token, expiresAt); err != nil {
		return "", err
	}

	user.IssuedToken = &token
	user.TokenExpiresAt = &expiresAt
	return token, nil
}

func (i *TokenIssuer) userLock(username string) *sync.Mutex {
	i.mu.Lock()
	defer i.mu.Unlock()
	lock, ok := i.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		i.locks[username] = lock
	}
	return lock
}

// TokenVerifier validates a presented token: signature and structure,
// embedded expiry, subject resolution, exact match against the stored
// token, and the stored expiry. The checks run in that order, each one a
// terminal rejection point, and every rejection is the same
// domain.ErrNotAuthenticated.
type TokenVerifier struct {
	repo   ports.UserRepository
	secret []byte
}

func NewTokenVerifier(repo ports.UserRepository, secret string) *TokenVerifier {
	return &TokenVerifier{repo: repo, secret: []byte(secret)}
}

func (v *TokenVerifier) Verify(ctx context.Context, credential string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrNotAuthenticated
	}

	// Parsing already rejects an elapsed exp claim, but the claim itself
	// must be present: a token without one never expires on its own.
	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return "", domain.ErrNotAuthenticated
	}

	subject := claims.Subject
	if subject == "" {
		return "", domain.ErrNotAuthenticated
	}

	user, err := v.repo.FindByUsername(ctx, subject)
	if err != nil {
		return "", domain.ErrNotAuthenticated
	}

	if user.IssuedToken == nil || *user.IssuedToken != credential {
		return "", domain.ErrNotAuthenticated
	}

	if user.TokenExpiresAt == nil || !time.Now().Before(*user.TokenExpiresAt) {
		return "", domain.ErrNotAuthenticated
	}

	return subject, nil
}
