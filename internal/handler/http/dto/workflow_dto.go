package dto

import (
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// ConsultationRequestBody is the payload of POST /consultation-request.
type ConsultationRequestBody struct {
	Type    string `json:"type" binding:"required"`
	Goals   string `json:"goals" binding:"required"`
	Urgency string `json:"urgency" binding:"required"`
	Notes   string `json:"notes" binding:"max=2000"`
}

func (r ConsultationRequestBody) ToInput() usecasecontract.ConsultationInput {
	return usecasecontract.ConsultationInput{
		Type:    entity.ConsultationType(r.Type),
		Goals:   r.Goals,
		Urgency: entity.Urgency(r.Urgency),
		Notes:   r.Notes,
	}
}

// DecisionRequest is the payload of PATCH /consultation-request.
type DecisionRequest struct {
	RequestID    string `json:"requestId" binding:"required"`
	Action       string `json:"action"`
	SpecialistID string `json:"specialistId"`
	Reason       string `json:"reason" binding:"max=1000"`
}

func (r DecisionRequest) ToInput() usecasecontract.DecisionInput {
	return usecasecontract.DecisionInput{
		RequestID:    r.RequestID,
		Action:       entity.ConsultationAction(r.Action),
		SpecialistID: r.SpecialistID,
		Reason:       r.Reason,
	}
}

type AvailabilityQuery struct {
	SpecialistID string `form:"specialistId" binding:"required"`
	Date         string `form:"date" binding:"required,date"`
	Timezone     string `form:"timezone" binding:"omitempty,timezone"`
}

type BookAppointmentRequest struct {
	SpecialistID string `json:"specialistId" binding:"required"`
	Date         string `json:"date" binding:"required,date"`
	StartTime    string `json:"startTime" binding:"required,clock"`
	EndTime      string `json:"endTime" binding:"required,clock"`
	Duration     int    `json:"duration" binding:"omitempty,min=1,max=480"`
	Type         string `json:"type" binding:"omitempty,oneof=video phone in_person"`
	Notes        string `json:"notes" binding:"max=2000"`
	Timezone     string `json:"timezone" binding:"omitempty,timezone"`
}

func (r BookAppointmentRequest) ToInput() usecasecontract.BookingInput {
	return usecasecontract.BookingInput{
		SpecialistID: r.SpecialistID,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Duration:     r.Duration,
		Type:         entity.AppointmentType(r.Type),
		Notes:        r.Notes,
		Timezone:     r.Timezone,
	}
}

type UpdateAppointmentRequest struct {
	AppointmentID string  `json:"appointmentId" binding:"required"`
	Status        string  `json:"status" binding:"required"`
	AdminNotes    *string `json:"adminNotes" binding:"omitempty,max=2000"`
	MeetingLink   *string `json:"meetingLink" binding:"omitempty,url"`
}

func (r UpdateAppointmentRequest) ToInput() usecasecontract.AppointmentUpdateInput {
	return usecasecontract.AppointmentUpdateInput{
		AppointmentID: r.AppointmentID,
		Status:        entity.AppointmentStatus(r.Status),
		AdminNotes:    r.AdminNotes,
		MeetingLink:   r.MeetingLink,
	}
}

// SendMessageRequest addresses a user id or the "admin" token.
type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

type MessageListQuery struct {
	ConversationID string `form:"conversationId"`
	UserID         string `form:"userId"`
}

type MarkReadRequest struct {
	ConversationID string `json:"conversationId" binding:"required"`
}
