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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

var _ contract.ICategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(collection *mongo.Collection) *CategoryRepository {
	return &CategoryRepository{collection: collection}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("category %s already exists", category.Name)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var category entity.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("category not found")
		}
		return nil, fmt.Errorf("failed to fetch category %s: %w", id, err)
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []entity.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	category.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("category %s already exists", category.Name)
		}
		return fmt.Errorf("failed to update category %s: %w", category.ID, err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return apperror.NotFound("category not found")
	}
	return nil
}

func (r *CategoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return n > 0, nil
}
