package domain

import "errors"

// Sentinel errors crossing the collaborator boundaries. Repositories and the
// token service return these; the HTTP error handler maps them to status codes
// in a single place, so controllers can forward failures without interpreting
// them.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrRatingNotFound     = errors.New("video rating not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnsupportedGrant   = errors.New("unsupported grant type")
)
