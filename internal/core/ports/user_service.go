package ports

import (
	"context"

	"github.com/vidhive/accounts-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating an account.
type CreateUserInput struct {
	Username string
	Password string
	Email    string
	// Role is honored on the admin create path only (defaulting to the
	// regular user role when empty). The self-registration path ignores it.
	Role string
}

// UpdateUserInput distinguishes "field absent" (nil) from an explicit value,
// so an intentional DisplayNSFW=false is applied rather than skipped.
type UpdateUserInput struct {
	Password    *string
	DisplayNSFW *bool
}

// VideoRating is the result of a rating lookup. Rating is the stored rate
// type, or "none" when the user has not rated the video.
type VideoRating struct {
	VideoID string
	Rating  string
}

// UserPage is one page of accounts plus the total matching count.
type UserPage struct {
	Users []*domain.User
	Total int64
}

// UserService implements the account lifecycle operations.
type UserService interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetVideoRating(ctx context.Context, userID, videoID string) (*VideoRating, error)
	List(ctx context.Context, q ListQuery) (*UserPage, error)
	// Create provisions an account through the admin path.
	Create(ctx context.Context, in CreateUserInput) error
	// Register provisions an account through self-registration; role and
	// NSFW preference in the input are never trusted.
	Register(ctx context.Context, in CreateUserInput) error
	Update(ctx context.Context, username string, in UpdateUserInput) error
	Remove(ctx context.Context, id string) error
}
