package entity

type NotificationKind string

const (
	NotificationAppointmentBooked    NotificationKind = "appointment_booked"
	NotificationAppointmentConfirmed NotificationKind = "appointment_confirmed"
	NotificationAppointmentRejected  NotificationKind = "appointment_rejected"
	NotificationAppointmentCancelled NotificationKind = "appointment_cancelled"
	NotificationConsultationDecided  NotificationKind = "consultation_decided"
)

// Notification is addressed to one recipient and carries the record it is about.
type Notification struct {
	Kind           NotificationKind
	RecipientName  string
	RecipientEmail string
	Appointment    *Appointment
	Consultation   *ConsultationRequest
}
