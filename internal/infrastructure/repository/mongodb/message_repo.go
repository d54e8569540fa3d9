package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository struct {
	collection *mongo.Collection
}

var _ contract.IMessageRepository = (*MessageRepository)(nil)

func NewMessageRepository(collection *mongo.Collection) *MessageRepository {
	return &MessageRepository{collection: collection}
}

func (r *MessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if _, err := r.collection.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *MessageRepository) find(ctx context.Context, filter bson.M, createdOrder int) ([]entity.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: createdOrder}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []entity.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]entity.Message, error) {
	return r.find(ctx, bson.M{"conversation_id": conversationID}, 1)
}

func (r *MessageRepository) ListByRecipientRole(ctx context.Context, role entity.UserRole) ([]entity.Message, error) {
	return r.find(ctx, bson.M{"recipient_role": role}, -1)
}

func (r *MessageRepository) ListByParticipant(ctx context.Context, userID string) ([]entity.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userID},
		bson.M{"recipient_id": userID},
	}}
	return r.find(ctx, filter, -1)
}

// MarkConversationRead only matches unread messages, so repeating it changes nothing.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, conversationID, recipientID string, at time.Time) (int64, error) {
	filter := bson.M{
		"conversation_id": conversationID,
		"recipient_id":    recipientID,
		"is_read":         false,
	}
	update := bson.M{"$set": bson.M{"is_read": true, "read_at": at}}
	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark conversation %s read: %w", conversationID, err)
	}
	return result.ModifiedCount, nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"recipient_id": recipientID, "is_read": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return n, nil
}

func (r *MessageRepository) CountUnreadByRecipientRole(ctx context.Context, role entity.UserRole) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"recipient_role": role, "is_read": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return n, nil
}
