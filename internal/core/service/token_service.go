package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidhive/accounts-api/internal/core/domain"
	"github.com/vidhive/accounts-api/internal/core/ports"
)

// RefreshTokenStore abstracts the refresh-token records (Redis).
type RefreshTokenStore interface {
	Save(ctx context.Context, token ports.RefreshToken) error
	// Find returns the record behind a refresh token id, or
	// domain.ErrInvalidToken when it does not exist.
	Find(ctx context.Context, id string) (*ports.RefreshToken, error)
	Delete(ctx context.Context, id string) error
}

// TokenService implements the credential exchange: password and
// refresh_token grants, HS256 access tokens, single-use refresh tokens.
type TokenService struct {
	users      ports.UserRepository
	store      RefreshTokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        zerolog.Logger
}

func NewTokenService(
	users ports.UserRepository,
	store RefreshTokenStore,
	jwtSecret string,
	accessTTL, refreshTTL time.Duration,
	log zerolog.Logger,
) *TokenService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 14 * 24 * time.Hour
	}
	return &TokenService{
		users:      users,
		store:      store,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		log:        log,
	}
}

// Grant exchanges credentials for a token pair.
func (s *TokenService) Grant(ctx context.Context, req ports.TokenRequest) (*ports.TokenPair, error) {
	switch req.GrantType {
	case ports.GrantPassword:
		return s.passwordGrant(ctx, req.Username, req.Password)
	case ports.GrantRefreshToken:
		return s.refreshGrant(ctx, req.RefreshToken)
	default:
		return nil, domain.ErrUnsupportedGrant
	}
}

func (s *TokenService) passwordGrant(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("token issued")
	return pair, nil
}

func (s *TokenService) refreshGrant(ctx context.Context, token string) (*ports.TokenPair, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	rec, err := s.store.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	if time.Now().After(rec.ExpiresAt) {
		_ = s.store.Delete(ctx, rec.ID)
		return nil, domain.ErrInvalidToken
	}

	// Reload the account so role changes and deletions take effect on refresh.
	user, err := s.users.FindByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	// Single use: the consumed token is dropped before its replacement is issued.
	if err := s.store.Delete(ctx, rec.ID); err != nil {
		s.log.Warn().Err(err).Str("username", user.Username).Msg("failed to drop rotated refresh token")
	}

	return s.issue(ctx, user)
}

func (s *TokenService) issue(ctx context.Context, user *domain.User) (*ports.TokenPair, error) {
	access, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	refresh := ports.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: time.Now().Add(s.refreshTTL).UTC(),
	}
	if err := s.store.Save(ctx, refresh); err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken:  access,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTTL.Seconds()),
		RefreshToken: refresh.ID,
	}, nil
}

func (s *TokenService) signAccessToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.accessTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
