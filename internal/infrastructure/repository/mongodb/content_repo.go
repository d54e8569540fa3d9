package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContentRepository struct {
	collection *mongo.Collection
}

var _ contract.IContentRepository = (*ContentRepository)(nil)

func NewContentRepository(collection *mongo.Collection) *ContentRepository {
	return &ContentRepository{collection: collection}
}

func (r *ContentRepository) Create(ctx context.Context, content *entity.Content) error {
	if _, err := r.collection.InsertOne(ctx, content); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("content with slug %s already exists", content.Slug)
		}
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

func (r *ContentRepository) findOne(ctx context.Context, filter bson.M) (*entity.Content, error) {
	var content entity.Content
	err := r.collection.FindOne(ctx, filter).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("content not found")
		}
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}
	return &content, nil
}

func (r *ContentRepository) GetByID(ctx context.Context, id string) (*entity.Content, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ContentRepository) GetBySlug(ctx context.Context, slug string) (*entity.Content, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func contentFilterToBSON(filter entity.ContentFilter) bson.M {
	query := bson.M{}
	if filter.PublishedOnly {
		query["is_published"] = true
	}
	if filter.Type != nil {
		query["type"] = *filter.Type
	}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		query["$or"] = bson.A{
			bson.M{"title": containsInsensitive(s)},
			bson.M{"tags": containsInsensitive(s)},
		}
	}
	return query
}

func (r *ContentRepository) List(ctx context.Context, filter entity.ContentFilter) ([]entity.Content, int64, error) {
	query := contentFilterToBSON(filter)
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count content: %w", err)
	}

	opts := pageOptions(filter.Page, filter.Limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list content: %w", err)
	}
	defer cursor.Close(ctx)

	items := []entity.Content{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode content: %w", err)
	}
	return items, total, nil
}

func (r *ContentRepository) Update(ctx context.Context, content *entity.Content) error {
	content.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": content.ID}, content)
	if err != nil {
		return fmt.Errorf("failed to update content %s: %w", content.ID, err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("content not found")
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete content %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return apperror.NotFound("content not found")
	}
	return nil
}

func (r *ContentRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return n > 0, nil
}
