package contract

import (
	"context"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

type IMessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// ListByConversation returns the thread oldest first.
	ListByConversation(ctx context.Context, conversationID string) ([]entity.Message, error)
	// ListByRecipientRole returns messages addressed to any user of the role, newest first.
	ListByRecipientRole(ctx context.Context, role entity.UserRole) ([]entity.Message, error)
	// ListByParticipant returns every message sent or received by the user, newest first.
	ListByParticipant(ctx context.Context, userID string) ([]entity.Message, error)
	// MarkConversationRead flags unread messages addressed to recipientID and
	// returns how many documents changed.
	MarkConversationRead(ctx context.Context, conversationID, recipientID string, at time.Time) (int64, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	CountUnreadByRecipientRole(ctx context.Context, role entity.UserRole) (int64, error)
}
