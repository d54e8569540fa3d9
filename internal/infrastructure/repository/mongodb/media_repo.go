package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MediaRepository represents the MongoDB implementation of the IMediaRepository interface.
type MediaRepository struct {
	collection *mongo.Collection
}

var _ contract.IMediaRepository = (*MediaRepository)(nil)

// NewMediaRepository creates and returns a new MediaRepository instance.
func NewMediaRepository(collection *mongo.Collection) *MediaRepository {
	return &MediaRepository{collection: collection}
}

// CreateMedia inserts a new media record into the database.
func (r *MediaRepository) CreateMedia(ctx context.Context, media *entity.Media) error {
	if media.CreatedAt.IsZero() {
		media.CreatedAt = time.Now()
	}
	if _, err := r.collection.InsertOne(ctx, media); err != nil {
		return fmt.Errorf("failed to create media record: %w", err)
	}
	return nil
}

// GetMediaByPublicID retrieves a media record, excluding soft-deleted records.
func (r *MediaRepository) GetMediaByPublicID(ctx context.Context, publicID string) (*entity.Media, error) {
	var media entity.Media
	filter := bson.M{
		"public_id":  publicID,
		"is_deleted": false,
	}

	err := r.collection.FindOne(ctx, filter).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("media not found")
		}
		return nil, fmt.Errorf("failed to retrieve media record %s: %w", publicID, err)
	}
	return &media, nil
}

// DeleteMedia soft deletes a media record.
func (r *MediaRepository) DeleteMedia(ctx context.Context, publicID string) error {
	filter := bson.M{"public_id": publicID, "is_deleted": false}
	update := bson.M{"$set": bson.M{"is_deleted": true}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to soft-delete media record %s: %w", publicID, err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("media not found")
	}
	return nil
}
