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

type AssessmentRepository struct {
	collection *mongo.Collection
}

var _ contract.IAssessmentRepository = (*AssessmentRepository)(nil)

func NewAssessmentRepository(collection *mongo.Collection) *AssessmentRepository {
	return &AssessmentRepository{collection: collection}
}

func (r *AssessmentRepository) Create(ctx context.Context, assessment *entity.Assessment) error {
	if _, err := r.collection.InsertOne(ctx, assessment); err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

func (r *AssessmentRepository) GetFirstByUserID(ctx context.Context, userID string) (*entity.Assessment, error) {
	var assessment entity.Assessment
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&assessment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("assessment not found")
		}
		return nil, fmt.Errorf("failed to fetch assessment for user %s: %w", userID, err)
	}
	return &assessment, nil
}

func (r *AssessmentRepository) ListByUserID(ctx context.Context, userID string) ([]entity.Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	assessments := []entity.Assessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, fmt.Errorf("failed to decode assessments: %w", err)
	}
	return assessments, nil
}
