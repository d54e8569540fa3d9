package usecasecontract

import (
	"context"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

type ConsultationInput struct {
	Type    entity.ConsultationType
	Goals   string
	Urgency entity.Urgency
	Notes   string
}

type DecisionInput struct {
	RequestID    string
	Action       entity.ConsultationAction
	SpecialistID string
	Reason       string
}

type IConsultationUseCase interface {
	Submit(ctx context.Context, actor entity.Actor, input ConsultationInput) (*entity.ConsultationRequest, error)
	List(ctx context.Context, actor entity.Actor) ([]entity.ConsultationRequest, error)
	Decide(ctx context.Context, actor entity.Actor, input DecisionInput) (*entity.ConsultationRequest, error)
}

type BookingInput struct {
	SpecialistID string
	Date         string
	StartTime    string
	EndTime      string
	Duration     int
	Type         entity.AppointmentType
	Notes        string
	Timezone     string
}

type AppointmentUpdateInput struct {
	AppointmentID string
	Status        entity.AppointmentStatus
	AdminNotes    *string
	MeetingLink   *string
}

type IAppointmentUseCase interface {
	GetAvailability(ctx context.Context, actor entity.Actor, specialistID, date, timezone string) (*entity.Availability, error)
	Book(ctx context.Context, actor entity.Actor, input BookingInput) (*entity.Appointment, error)
	List(ctx context.Context, actor entity.Actor, status string) ([]entity.Appointment, error)
	Update(ctx context.Context, actor entity.Actor, input AppointmentUpdateInput) (*entity.Appointment, error)
	Cancel(ctx context.Context, actor entity.Actor, appointmentID string) error
}

type IMessageUseCase interface {
	Send(ctx context.Context, actor entity.Actor, recipient, content string) (*entity.Message, error)
	List(ctx context.Context, actor entity.Actor, query entity.MessageQuery) ([]entity.Message, error)
	MarkRead(ctx context.Context, actor entity.Actor, conversationID string) (int64, error)
	UnreadCount(ctx context.Context, actor entity.Actor) (int64, error)
}
