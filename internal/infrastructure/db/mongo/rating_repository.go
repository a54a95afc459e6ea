package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vidhive/accounts-api/internal/core/domain"
)

const ratesCollection = "user_video_rates"

// RatingRepository implements ports.RatingRepository on a MongoDB collection.
// The collection is written by the video pipeline; this side only reads it.
type RatingRepository struct {
	coll *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{coll: db.Collection(ratesCollection)}
}

type rateDoc struct {
	UserID  primitive.ObjectID `bson:"user_id"`
	VideoID primitive.ObjectID `bson:"video_id"`
	Type    string             `bson:"type"`
}

// FindByUserAndVideo returns the rating a user gave a video, or
// domain.ErrRatingNotFound when no record exists. Malformed ids count as
// absent: an id that never existed cannot have rated anything.
func (r *RatingRepository) FindByUserAndVideo(ctx context.Context, userID, videoID string) (*domain.UserVideoRate, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrRatingNotFound
	}
	vid, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return nil, domain.ErrRatingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc rateDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": uid, "video_id": vid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, fmt.Errorf("find rating: %w", err)
	}

	return &domain.UserVideoRate{
		UserID:  doc.UserID.Hex(),
		VideoID: doc.VideoID.Hex(),
		Type:    domain.RateType(doc.Type),
	}, nil
}
