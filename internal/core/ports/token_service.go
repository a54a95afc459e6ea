package ports

import (
	"context"
	"time"
)

// Supported grant types for the credential-exchange endpoint.
const (
	GrantPassword     = "password"
	GrantRefreshToken = "refresh_token"
)

// TokenRequest carries the credential-exchange parameters of POST /token.
type TokenRequest struct {
	GrantType    string
	Username     string
	Password     string
	RefreshToken string
}

// TokenPair is the issued credential set.
type TokenPair struct {
	AccessToken  string
	TokenType    string
	ExpiresIn    int64 // seconds until the access token expires
	RefreshToken string
}

// RefreshToken is the server-side record backing a refresh credential.
// Tokens are single-use: a refresh grant rotates the record.
type RefreshToken struct {
	ID        string
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// TokenService exchanges credentials for token pairs.
type TokenService interface {
	Grant(ctx context.Context, req TokenRequest) (*TokenPair, error)
}
