package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BrandingRepository stores the single site branding document.
type BrandingRepository struct {
	collection *mongo.Collection
}

var _ contract.IBrandingRepository = (*BrandingRepository)(nil)

func NewBrandingRepository(collection *mongo.Collection) *BrandingRepository {
	return &BrandingRepository{collection: collection}
}

func (r *BrandingRepository) Get(ctx context.Context) (*entity.Branding, error) {
	var branding entity.Branding
	err := r.collection.FindOne(ctx, bson.M{"_id": entity.BrandingID}).Decode(&branding)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("branding not configured")
		}
		return nil, fmt.Errorf("failed to fetch branding: %w", err)
	}
	return &branding, nil
}

func (r *BrandingRepository) Upsert(ctx context.Context, branding *entity.Branding) error {
	branding.ID = entity.BrandingID
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entity.BrandingID}, branding, opts); err != nil {
		return fmt.Errorf("failed to save branding: %w", err)
	}
	return nil
}
