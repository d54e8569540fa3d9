package mocks

import (
	"context"
	"errors"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// MockConsultationUsecase is a mock of the consultation request workflow.
type MockConsultationUsecase struct {
	ShouldFailSubmit bool
	ShouldFailList   bool
	ShouldFailDecide bool

	LastActor    entity.Actor
	LastInput    usecasecontract.ConsultationInput
	LastDecision usecasecontract.DecisionInput
}

var _ usecasecontract.IConsultationUseCase = (*MockConsultationUsecase)(nil)

func NewMockConsultationUsecase() *MockConsultationUsecase {
	return &MockConsultationUsecase{}
}

func (m *MockConsultationUsecase) Submit(ctx context.Context, actor entity.Actor, input usecasecontract.ConsultationInput) (*entity.ConsultationRequest, error) {
	m.LastActor = actor
	m.LastInput = input
	if m.ShouldFailSubmit {
		return nil, apperror.Conflict("you already have a pending consultation request")
	}
	return &entity.ConsultationRequest{
		ID:      "request-1",
		UserID:  actor.UserID,
		Type:    input.Type,
		Goals:   input.Goals,
		Urgency: input.Urgency,
		Status:  entity.ConsultationStatusPending,
	}, nil
}

func (m *MockConsultationUsecase) List(ctx context.Context, actor entity.Actor) ([]entity.ConsultationRequest, error) {
	m.LastActor = actor
	if m.ShouldFailList {
		return nil, apperror.Internal("failed to list consultation requests", errors.New("db down"))
	}
	return []entity.ConsultationRequest{{ID: "request-1", UserID: actor.UserID, Status: entity.ConsultationStatusPending}}, nil
}

func (m *MockConsultationUsecase) Decide(ctx context.Context, actor entity.Actor, input usecasecontract.DecisionInput) (*entity.ConsultationRequest, error) {
	m.LastActor = actor
	m.LastDecision = input
	if m.ShouldFailDecide {
		return nil, apperror.NotFound("consultation request not found")
	}
	return &entity.ConsultationRequest{
		ID:                     input.RequestID,
		Status:                 entity.ConsultationStatusAssigned,
		AssignedSpecialistID:   input.SpecialistID,
		AssignedSpecialistName: "Dr. Amal",
	}, nil
}

// MockAppointmentUsecase is a mock of the appointment workflow.
type MockAppointmentUsecase struct {
	ShouldFailAvailability bool
	ShouldFailBook         bool
	ShouldFailList         bool
	ShouldFailUpdate       bool
	ShouldFailCancel       bool

	LastActor       entity.Actor
	LastBooking     usecasecontract.BookingInput
	LastUpdate      usecasecontract.AppointmentUpdateInput
	LastStatus      string
	LastTimezone    string
	LastCancelledID string
}

var _ usecasecontract.IAppointmentUseCase = (*MockAppointmentUsecase)(nil)

func NewMockAppointmentUsecase() *MockAppointmentUsecase {
	return &MockAppointmentUsecase{}
}

func (m *MockAppointmentUsecase) GetAvailability(ctx context.Context, actor entity.Actor, specialistID, date, timezone string) (*entity.Availability, error) {
	m.LastActor = actor
	m.LastTimezone = timezone
	if m.ShouldFailAvailability {
		return nil, apperror.NotFound("specialist not found")
	}
	return &entity.Availability{
		Date:         date,
		SpecialistID: specialistID,
		Timezone:     timezone,
		Slots:        []entity.TimeSlot{{StartTime: "09:00", EndTime: "10:00"}, {StartTime: "11:00", EndTime: "12:00"}},
		BookedAppointments: []entity.Appointment{
			{ID: "appt-1", SpecialistID: specialistID, StartTime: "10:00", EndTime: "11:00", Status: entity.AppointmentStatusPending},
		},
	}, nil
}

func (m *MockAppointmentUsecase) Book(ctx context.Context, actor entity.Actor, input usecasecontract.BookingInput) (*entity.Appointment, error) {
	m.LastActor = actor
	m.LastBooking = input
	if m.ShouldFailBook {
		return nil, apperror.Conflict("the specialist already has an appointment on this day")
	}
	return &entity.Appointment{
		ID:           "appt-1",
		UserID:       actor.UserID,
		SpecialistID: input.SpecialistID,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Type:         input.Type,
		Status:       entity.AppointmentStatusPending,
	}, nil
}

func (m *MockAppointmentUsecase) List(ctx context.Context, actor entity.Actor, status string) ([]entity.Appointment, error) {
	m.LastActor = actor
	m.LastStatus = status
	if m.ShouldFailList {
		return nil, apperror.Validation("invalid status %q", status)
	}
	return []entity.Appointment{{ID: "appt-1", UserID: actor.UserID, Status: entity.AppointmentStatusPending}}, nil
}

func (m *MockAppointmentUsecase) Update(ctx context.Context, actor entity.Actor, input usecasecontract.AppointmentUpdateInput) (*entity.Appointment, error) {
	m.LastActor = actor
	m.LastUpdate = input
	if m.ShouldFailUpdate {
		return nil, apperror.Forbidden("only the participants can update this appointment")
	}
	return &entity.Appointment{ID: input.AppointmentID, Status: input.Status}, nil
}

func (m *MockAppointmentUsecase) Cancel(ctx context.Context, actor entity.Actor, appointmentID string) error {
	m.LastActor = actor
	m.LastCancelledID = appointmentID
	if m.ShouldFailCancel {
		return apperror.NotFound("appointment not found")
	}
	return nil
}

// MockMessageUsecase is a mock of the messaging use case.
type MockMessageUsecase struct {
	ShouldFailSend     bool
	ShouldFailList     bool
	ShouldFailMarkRead bool
	ShouldFailUnread   bool

	MockModifiedCount int64
	MockUnreadCount   int64

	LastActor     entity.Actor
	LastRecipient string
	LastContent   string
	LastQuery     entity.MessageQuery
}

var _ usecasecontract.IMessageUseCase = (*MockMessageUsecase)(nil)

func NewMockMessageUsecase() *MockMessageUsecase {
	return &MockMessageUsecase{MockModifiedCount: 2, MockUnreadCount: 3}
}

func (m *MockMessageUsecase) Send(ctx context.Context, actor entity.Actor, recipient, content string) (*entity.Message, error) {
	m.LastActor = actor
	m.LastRecipient = recipient
	m.LastContent = content
	if m.ShouldFailSend {
		return nil, apperror.NotFound("recipient not found")
	}
	return &entity.Message{
		ID:             "msg-1",
		ConversationID: actor.UserID + "_" + recipient,
		SenderID:       actor.UserID,
		RecipientID:    recipient,
		Content:        content,
	}, nil
}

func (m *MockMessageUsecase) List(ctx context.Context, actor entity.Actor, query entity.MessageQuery) ([]entity.Message, error) {
	m.LastActor = actor
	m.LastQuery = query
	if m.ShouldFailList {
		return nil, apperror.Forbidden("you are not a participant in this conversation")
	}
	return []entity.Message{{ID: "msg-1", ConversationID: query.ConversationID, Content: "hello"}}, nil
}

func (m *MockMessageUsecase) MarkRead(ctx context.Context, actor entity.Actor, conversationID string) (int64, error) {
	m.LastActor = actor
	if m.ShouldFailMarkRead {
		return 0, apperror.Validation("conversationId is required")
	}
	return m.MockModifiedCount, nil
}

func (m *MockMessageUsecase) UnreadCount(ctx context.Context, actor entity.Actor) (int64, error) {
	m.LastActor = actor
	if m.ShouldFailUnread {
		return 0, apperror.Internal("failed to count unread messages", errors.New("db down"))
	}
	return m.MockUnreadCount, nil
}
