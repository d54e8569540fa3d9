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

type ConsultationRepository struct {
	collection *mongo.Collection
}

var _ contract.IConsultationRepository = (*ConsultationRepository)(nil)

func NewConsultationRepository(collection *mongo.Collection) *ConsultationRepository {
	return &ConsultationRepository{collection: collection}
}

func (r *ConsultationRepository) Create(ctx context.Context, request *entity.ConsultationRequest) error {
	if _, err := r.collection.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to create consultation request: %w", err)
	}
	return nil
}

func (r *ConsultationRepository) GetByID(ctx context.Context, id string) (*entity.ConsultationRequest, error) {
	var request entity.ConsultationRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("consultation request not found")
		}
		return nil, fmt.Errorf("failed to fetch consultation request %s: %w", id, err)
	}
	return &request, nil
}

func (r *ConsultationRepository) HasPending(ctx context.Context, userID string) (bool, error) {
	filter := bson.M{"user_id": userID, "status": entity.ConsultationStatusPending}
	n, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check pending requests for user %s: %w", userID, err)
	}
	return n > 0, nil
}

func (r *ConsultationRepository) list(ctx context.Context, filter bson.M) ([]entity.ConsultationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultation requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []entity.ConsultationRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode consultation requests: %w", err)
	}
	return requests, nil
}

func (r *ConsultationRepository) ListByStatus(ctx context.Context, status entity.ConsultationStatus) ([]entity.ConsultationRequest, error) {
	return r.list(ctx, bson.M{"status": status})
}

func (r *ConsultationRepository) ListByUserID(ctx context.Context, userID string) ([]entity.ConsultationRequest, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ConsultationRepository) Decide(ctx context.Context, id string, decision entity.ConsultationDecision) (*entity.ConsultationRequest, error) {
	set := bson.M{
		"status":     decision.Status,
		"decided_by": decision.DecidedBy,
		"decided_at": decision.DecidedAt,
		"updated_at": time.Now(),
	}
	if decision.AssignedSpecialistID != "" {
		set["assigned_specialist_id"] = decision.AssignedSpecialistID
		set["assigned_specialist_name"] = decision.AssignedSpecialistName
	}
	if decision.RejectionReason != "" {
		set["rejection_reason"] = decision.RejectionReason
	}

	filter := bson.M{"_id": id, "status": entity.ConsultationStatusPending}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.ConsultationRequest
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to decide consultation request %s: %w", id, err)
	}

	// nothing matched: either the request is gone or it already left pending
	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, apperror.Conflict("consultation request is already %s", current.Status)
}

func (r *ConsultationRepository) CountByStatus(ctx context.Context, status entity.ConsultationStatus) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count consultation requests: %w", err)
	}
	return n, nil
}
