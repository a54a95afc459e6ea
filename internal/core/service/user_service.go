package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidhive/accounts-api/internal/core/domain"
	"github.com/vidhive/accounts-api/internal/core/ports"
)

// UserService implements the account lifecycle against the persistence
// collaborators. It holds no state of its own between requests.
type UserService struct {
	users   ports.UserRepository
	ratings ports.RatingRepository
	log     zerolog.Logger
}

func NewUserService(users ports.UserRepository, ratings ports.RatingRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, ratings: ratings, log: log}
}

// GetByUsername loads the account behind an authenticated principal.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// GetVideoRating reports the rating a user gave a video. A missing record is
// a normal outcome reported as the literal rating "none", not an error.
func (s *UserService) GetVideoRating(ctx context.Context, userID, videoID string) (*ports.VideoRating, error) {
	rate, err := s.ratings.FindByUserAndVideo(ctx, userID, videoID)
	if err != nil {
		if errors.Is(err, domain.ErrRatingNotFound) {
			return &ports.VideoRating{VideoID: videoID, Rating: string(domain.RateNone)}, nil
		}
		return nil, err
	}
	return &ports.VideoRating{VideoID: videoID, Rating: string(rate.Type)}, nil
}

// List returns one page of accounts plus the total account count.
func (s *UserService) List(ctx context.Context, q ports.ListQuery) (*ports.UserPage, error) {
	users, total, err := s.users.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &ports.UserPage{Users: users, Total: total}, nil
}

// Create provisions an account through the admin path. The input role is
// honored when present and valid; new accounts always start with the NSFW
// preference off.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) error {
	role := domain.Role(in.Role)
	if !role.Valid() {
		role = domain.RoleUser
	}
	return s.create(ctx, in, role)
}

// Register provisions an account through self-registration. Role and NSFW
// preference are never taken from the caller: every registered account is a
// regular user.
func (s *UserService) Register(ctx context.Context, in ports.CreateUserInput) error {
	return s.create(ctx, in, domain.RoleUser)
}

func (s *UserService) create(ctx context.Context, in ports.CreateUserInput, role domain.Role) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return err
	}

	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user created")
	return nil
}

// Update applies the user-mutable fields to the principal's account. Only
// supplied fields change: a nil pointer leaves the stored value untouched,
// while an explicit DisplayNSFW=false is applied.
func (s *UserService) Update(ctx context.Context, username string, in ports.UpdateUserInput) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	if in.DisplayNSFW != nil {
		user.DisplayNSFW = *in.DisplayNSFW
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

// Remove destroys an account by id. The load must succeed before the destroy
// runs; either failure is logged with its payload before being forwarded.
func (s *UserService) Remove(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to remove user")
		return err
	}

	if err := s.users.Delete(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Str("username", user.Username).Msg("failed to remove user")
		return err
	}

	s.log.Info().Str("user_id", id).Str("username", user.Username).Msg("user removed")
	return nil
}
