package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/metrics"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
	"github.com/medcharfeddine/nutricoach/internal/utils"
)

// MessageUseCase implements two-party threads keyed by conversation id.
type MessageUseCase struct {
	messageRepo contract.IMessageRepository
	userRepo    contract.IUserRepository
	uuidgen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
}

func NewMessageUseCase(messageRepo contract.IMessageRepository, userRepo contract.IUserRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		uuidgen:     uuidgen,
		logger:      logger,
	}
}

var _ usecasecontract.IMessageUseCase = (*MessageUseCase)(nil)

// resolveRecipient accepts a user id or the "admin" token, which means the
// first admin account.
func (uc *MessageUseCase) resolveRecipient(ctx context.Context, recipient string) (*entity.User, error) {
	var (
		user *entity.User
		err  error
	)
	if recipient == entity.AdminRecipient {
		user, err = uc.userRepo.GetFirstAdmin(ctx)
	} else {
		user, err = uc.userRepo.GetUserByID(ctx, recipient)
	}
	if err != nil {
		return nil, lookupErr(err, "recipient")
	}
	return user, nil
}

func (uc *MessageUseCase) Send(ctx context.Context, actor entity.Actor, recipient, content string) (*entity.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.Validation("message content is required")
	}
	if utf8.RuneCountInString(content) > entity.MaxMessageLength {
		return nil, apperror.Validation("message cannot exceed %d characters", entity.MaxMessageLength)
	}
	if strings.TrimSpace(recipient) == "" {
		return nil, apperror.Validation("recipientId is required")
	}

	to, err := uc.resolveRecipient(ctx, strings.TrimSpace(recipient))
	if err != nil {
		return nil, err
	}
	if to.ID == actor.UserID {
		return nil, apperror.Validation("you cannot message yourself")
	}

	message := &entity.Message{
		ID:             uc.uuidgen.NewUUID(),
		ConversationID: utils.ConversationID(actor.UserID, to.ID),
		SenderID:       actor.UserID,
		SenderName:     actor.Name,
		SenderRole:     actor.Role,
		RecipientID:    to.ID,
		RecipientName:  to.Name,
		RecipientRole:  to.Role,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		uc.logger.Errorf("failed to store message from %s: %v", actor.UserID, err)
		return nil, apperror.Internal("failed to send message", err)
	}
	metrics.IncMessageSent()
	return message, nil
}

// List returns one thread when a conversation or counterpart is given and the
// caller's inbox otherwise. Reading a thread marks the caller's unread
// messages in it as read.
func (uc *MessageUseCase) List(ctx context.Context, actor entity.Actor, query entity.MessageQuery) ([]entity.Message, error) {
	conversationID := query.ConversationID
	if conversationID == "" && query.CounterpartUserID != "" {
		conversationID = utils.ConversationID(actor.UserID, query.CounterpartUserID)
	}

	if conversationID == "" {
		var (
			messages []entity.Message
			err      error
		)
		if actor.IsAdmin() {
			messages, err = uc.messageRepo.ListByRecipientRole(ctx, entity.UserRoleAdmin)
		} else {
			messages, err = uc.messageRepo.ListByParticipant(ctx, actor.UserID)
		}
		if err != nil {
			return nil, apperror.Internal("failed to list messages", err)
		}
		return messages, nil
	}

	if !actor.IsAdmin() && !utils.IsConversationParticipant(conversationID, actor.UserID) {
		return nil, apperror.Forbidden("you are not a participant of this conversation")
	}
	messages, err := uc.messageRepo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, apperror.Internal("failed to list messages", err)
	}

	now := time.Now()
	if _, err := uc.messageRepo.MarkConversationRead(ctx, conversationID, actor.UserID, now); err != nil {
		uc.logger.Warnf("failed to mark conversation %s read for %s: %v", conversationID, actor.UserID, err)
		return messages, nil
	}
	for i := range messages {
		if messages[i].RecipientID == actor.UserID && !messages[i].IsRead {
			messages[i].IsRead = true
			messages[i].ReadAt = &now
		}
	}
	return messages, nil
}

func (uc *MessageUseCase) MarkRead(ctx context.Context, actor entity.Actor, conversationID string) (int64, error) {
	if conversationID == "" {
		return 0, apperror.Validation("conversationId is required")
	}
	modified, err := uc.messageRepo.MarkConversationRead(ctx, conversationID, actor.UserID, time.Now())
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return 0, nil
		}
		return 0, apperror.Internal("failed to mark messages read", err)
	}
	return modified, nil
}

func (uc *MessageUseCase) UnreadCount(ctx context.Context, actor entity.Actor) (int64, error) {
	count, err := uc.messageRepo.CountUnread(ctx, actor.UserID)
	if err != nil {
		return 0, apperror.Internal("failed to count unread messages", err)
	}
	return count, nil
}
