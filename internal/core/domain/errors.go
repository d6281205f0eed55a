package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrSessionNotFound = errors.New("session not found")

// ErrNotAuthenticated is the uniform rejection for every credential
// verification failure: bad signature, expired, unknown subject, superseded
// token, elapsed stored expiry. Callers cannot distinguish which check failed.
var ErrNotAuthenticated = errors.New("not authenticated")
