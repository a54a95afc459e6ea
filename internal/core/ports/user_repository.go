package ports

import (
	"context"

	"github.com/vidhive/accounts-api/internal/core/domain"
)

// ListQuery is the canonical pagination/sort shape for a list request,
// resolved once by the transport layer before the service runs.
type ListQuery struct {
	Start int
	Count int
	// Sort is a sortable column name, optionally prefixed with "-" for
	// descending order (e.g. "-createdAt").
	Sort string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns the stored entity (with ID).
	// A username or email collision yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns one page of users plus the total number of accounts,
	// independent of the page bounds.
	List(ctx context.Context, q ListQuery) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete destroys a previously loaded user. Callers must resolve the
	// entity first; the destructive call never runs on an unresolved id.
	Delete(ctx context.Context, user *domain.User) error
}
