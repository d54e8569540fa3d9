package entity

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusRejected},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HoldsSlot reports whether an appointment in this status occupies the specialist's day.
func (s AppointmentStatus) HoldsSlot() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

// SlotHoldingStatuses lists the statuses that block availability.
func SlotHoldingStatuses() []AppointmentStatus {
	return []AppointmentStatus{AppointmentStatusPending, AppointmentStatusConfirmed}
}

type AppointmentType string

const (
	AppointmentTypeVideo    AppointmentType = "video"
	AppointmentTypePhone    AppointmentType = "phone"
	AppointmentTypeInPerson AppointmentType = "in_person"
)

func (t AppointmentType) IsValid() bool {
	return t == AppointmentTypeVideo || t == AppointmentTypePhone || t == AppointmentTypeInPerson
}

const DefaultAppointmentDuration = 60

// Appointment binds a user to a specialist on a calendar day. Date is stored
// as UTC midnight of that day; StartTime and EndTime are "HH:MM" clock values
// in the client supplied Timezone. Names and emails are copied at booking.
type Appointment struct {
	ID              string            `bson:"_id,omitempty" json:"id"`
	UserID          string            `bson:"user_id" json:"userId"`
	UserName        string            `bson:"user_name" json:"userName"`
	UserEmail       string            `bson:"user_email" json:"userEmail"`
	SpecialistID    string            `bson:"specialist_id" json:"specialistId"`
	SpecialistName  string            `bson:"specialist_name" json:"specialistName"`
	SpecialistEmail string            `bson:"specialist_email" json:"specialistEmail"`
	Date            time.Time         `bson:"date" json:"date"`
	StartTime       string            `bson:"start_time" json:"startTime"`
	EndTime         string            `bson:"end_time" json:"endTime"`
	Duration        int               `bson:"duration" json:"duration"`
	Type            AppointmentType   `bson:"type" json:"type"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Timezone        string            `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	MeetingLink     string            `bson:"meeting_link,omitempty" json:"meetingLink,omitempty"`
	AdminNotes      string            `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updatedAt"`
}

// AppointmentFilter selects appointments for listings.
type AppointmentFilter struct {
	UserID       string
	SpecialistID string
	Status       *AppointmentStatus
}

// AppointmentChanges is the set of fields a status update may write.
type AppointmentChanges struct {
	Status      AppointmentStatus
	AdminNotes  *string
	MeetingLink *string
}

// TimeSlot is one bookable window of the daily grid.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Availability is the free grid for one specialist on one day.
type Availability struct {
	Date               string        `json:"date"`
	SpecialistID       string        `json:"specialistId"`
	Timezone           string        `json:"timezone,omitempty"`
	Slots              []TimeSlot    `json:"slots"`
	BookedAppointments []Appointment `json:"bookedAppointments"`
}
