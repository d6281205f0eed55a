package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sportshop/shop-system/internal/core/domain"
	"github.com/sportshop/shop-system/internal/core/ports"
)

// AuthService implements registration and the login flow.
type AuthService struct {
	repo   ports.UserRepository
	issuer ports.CredentialIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer ports.CredentialIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("account created")
	return created, nil
}

// Login walks the linear flow: validate, lookup, verify hash, issue
// credential. Issuing persists the credential on the user record, which
// revokes any previously issued one. Failure at any step is terminal.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	credential, err := s.issuer.Issue(ctx, user)
	if err != nil {
		return "", nil, err
	}

	return credential, user, nil
}
