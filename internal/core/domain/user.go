package domain

import "time"

// User models a registered shop account.
//
// IssuedToken holds the most recently issued credential for this account; it
// is overwritten on every successful login, which is what invalidates any
// earlier credential (revocation-by-overwrite). TokenExpiresAt is the
// authoritative expiry for IssuedToken, checked independently of the expiry
// embedded in the token itself.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	PasswordHash   string     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	IssuedToken    *string    `json:"-"`
	TokenExpiresAt *time.Time `json:"-"`
}
