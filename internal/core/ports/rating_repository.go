package ports

import (
	"context"

	"github.com/vidhive/accounts-api/internal/core/domain"
)

// RatingRepository reads video ratings owned by the video subsystem.
type RatingRepository interface {
	// FindByUserAndVideo returns the rating the user gave the video, or
	// domain.ErrRatingNotFound when the user has not rated it.
	FindByUserAndVideo(ctx context.Context, userID, videoID string) (*domain.UserVideoRate, error)
}
