package domain

// RateType is the closed set of rating values a user can put on a video.
type RateType string

const (
	RateLike    RateType = "like"
	RateDislike RateType = "dislike"

	// RateNone is the wire value reported when no rating record exists.
	// It is never persisted.
	RateNone RateType = "none"
)

// UserVideoRate associates a user with the rating they gave a video.
// Records are written by the video subsystem; this service only reads them,
// and a missing record is a normal state ("no rating"), not a failure.
type UserVideoRate struct {
	UserID  string
	VideoID string
	Type    RateType
}
