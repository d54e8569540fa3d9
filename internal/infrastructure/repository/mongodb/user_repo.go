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

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	user.Email = strings.ToLower(user.Email)
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("user with email %s already exists", user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter, opts...).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *MongoUserRepository) GetFirstAdmin(ctx context.Context) (*entity.User, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return r.findOne(ctx, bson.M{"role": entity.UserRoleAdmin}, opts)
}

// UpdateUser updates an existing user and returns the updated user
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.UpdatedAt = time.Now()
	user.Email = strings.ToLower(user.Email)
	filter := bson.M{"_id": user.ID}
	result, err := r.collection.ReplaceOne(ctx, filter, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	if result.MatchedCount == 0 {
		return nil, apperror.NotFound("user not found")
	}
	return r.findOne(ctx, filter)
}

func (r *MongoUserRepository) SetAssessment(ctx context.Context, userID string, snapshot *entity.Assessment) error {
	update := bson.M{"$set": bson.M{
		"assessment":               snapshot,
		"has_completed_assessment": true,
		"updated_at":               time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to store assessment snapshot for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("user not found")
	}
	return nil
}

func userFilterToBSON(filter entity.UserFilter) bson.M {
	query := bson.M{}
	if filter.Role != nil {
		query["role"] = *filter.Role
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		query["$or"] = bson.A{
			bson.M{"name": containsInsensitive(s)},
			bson.M{"email": containsInsensitive(s)},
		}
	}
	return query
}

func (r *MongoUserRepository) ListUsers(ctx context.Context, filter entity.UserFilter) ([]entity.User, int64, error) {
	query := userFilterToBSON(filter)
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	opts := pageOptions(filter.Page, filter.Limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, total, nil
}

func (r *MongoUserRepository) CountUsers(ctx context.Context, role *entity.UserRole) (int64, error) {
	query := bson.M{}
	if role != nil {
		query["role"] = *role
	}
	n, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (r *MongoUserRepository) CountCompletedAssessments(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"has_completed_assessment": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count completed assessments: %w", err)
	}
	return n, nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	count, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	if count.DeletedCount == 0 {
		return apperror.NotFound("user not found")
	}
	return nil
}
