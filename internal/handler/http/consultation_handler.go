package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

type ConsultationHandlerInterface interface {
	Submit(*gin.Context)
	List(*gin.Context)
	Decide(*gin.Context)
}

var _ ConsultationHandlerInterface = (*ConsultationHandler)(nil)

type ConsultationHandler struct {
	consultationUsecase usecasecontract.IConsultationUseCase
}

func NewConsultationHandler(uc usecasecontract.IConsultationUseCase) *ConsultationHandler {
	return &ConsultationHandler{consultationUsecase: uc}
}

// Submit creates a pending consultation request for the caller.
func (h *ConsultationHandler) Submit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.ConsultationRequestBody
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	request, err := h.consultationUsecase.Submit(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		// an existing pending request is reported as a bad request on this route
		if errors.Is(err, apperror.ErrConflict) {
			ErrorHandler(c, http.StatusBadRequest, apperror.PublicMessage(err))
			return
		}
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, request)
}

// List returns pending requests to admins and own requests to users.
func (h *ConsultationHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	requests, err := h.consultationUsecase.List(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, requests)
}

func (h *ConsultationHandler) Decide(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	request, err := h.consultationUsecase.Decide(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, request)
}
