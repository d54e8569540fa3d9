package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

type AppointmentHandlerInterface interface {
	GetAvailability(*gin.Context)
	Book(*gin.Context)
	List(*gin.Context)
	Update(*gin.Context)
	Cancel(*gin.Context)
}

var _ AppointmentHandlerInterface = (*AppointmentHandler)(nil)

type AppointmentHandler struct {
	appointmentUsecase usecasecontract.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecasecontract.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{appointmentUsecase: uc}
}

func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var q dto.AvailabilityQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	availability, err := h.appointmentUsecase.GetAvailability(c.Request.Context(), actor, q.SpecialistID, q.Date, q.Timezone)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, availability)
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.BookAppointmentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	appointment, err := h.appointmentUsecase.Book(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, appointment)
}

// List accepts an optional ?status= filter.
func (h *AppointmentHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.List(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, appointments)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	appointment, err := h.appointmentUsecase.Update(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, appointment)
}

// Cancel deletes the appointment named by ?id=.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		ErrorHandler(c, http.StatusBadRequest, "id query parameter is required")
		return
	}

	if err := h.appointmentUsecase.Cancel(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Appointment cancelled")
}
