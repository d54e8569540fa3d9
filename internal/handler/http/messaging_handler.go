package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

type MessagingHandlerInterface interface {
	Send(*gin.Context)
	List(*gin.Context)
	MarkRead(*gin.Context)
	UnreadCount(*gin.Context)
}

var _ MessagingHandlerInterface = (*MessagingHandler)(nil)

type MessagingHandler struct {
	messageUsecase usecasecontract.IMessageUseCase
}

func NewMessagingHandler(uc usecasecontract.IMessageUseCase) *MessagingHandler {
	return &MessagingHandler{messageUsecase: uc}
}

func (h *MessagingHandler) Send(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	message, err := h.messageUsecase.Send(c.Request.Context(), actor, req.RecipientID, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, message)
}

// List reads one thread when conversationId or userId is given and the
// caller's inbox otherwise.
func (h *MessagingHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var q dto.MessageListQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	messages, err := h.messageUsecase.List(c.Request.Context(), actor, entity.MessageQuery{
		ConversationID:    q.ConversationID,
		CounterpartUserID: q.UserID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, messages)
}

func (h *MessagingHandler) MarkRead(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.MarkReadRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	modified, err := h.messageUsecase.MarkRead(c.Request.Context(), actor, req.ConversationID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ModifiedCountResponse{ModifiedCount: modified})
}

func (h *MessagingHandler) UnreadCount(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	count, err := h.messageUsecase.UnreadCount(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UnreadCountResponse{Count: count})
}
