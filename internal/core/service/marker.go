package service

import (
	"context"

	"github.com/sportshop/shop-system/internal/core/domain"
	"github.com/sportshop/shop-system/internal/core/ports"
)

// MarkerIssuer and MarkerVerifier implement the session-only discipline: the
// credential is the bare username held in the session, with no signature, no
// expiry and no store cross-check. Possession of the session is the proof.
//
// The discipline is chosen once at startup; mixing it per route with the
// token discipline is deliberately impossible, the router holds exactly one
// issuer/verifier pair.
type MarkerIssuer struct{}

func NewMarkerIssuer() *MarkerIssuer { return &MarkerIssuer{} }

func (MarkerIssuer) Issue(_ context.Context, user *domain.User) (string, error) {
	return user.Username, nil
}

type MarkerVerifier struct{}

func NewMarkerVerifier() *MarkerVerifier { return &MarkerVerifier{} }

func (MarkerVerifier) Verify(_ context.Context, credential string) (string, error) {
	if credential == "" {
		return "", domain.ErrNotAuthenticated
	}
	return credential, nil
}

var _ ports.CredentialIssuer = (*MarkerIssuer)(nil)
var _ ports.CredentialVerifier = (*MarkerVerifier)(nil)
