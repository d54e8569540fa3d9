package entity

// AdminStats summarises the platform for the admin dashboard.
type AdminStats struct {
	TotalUsers           int64                       `json:"totalUsers"`
	TotalSpecialists     int64                       `json:"totalSpecialists"`
	CompletedAssessments int64                       `json:"completedAssessments"`
	PendingConsultations int64                       `json:"pendingConsultations"`
	AppointmentsByStatus map[AppointmentStatus]int64 `json:"appointmentsByStatus"`
	UnreadAdminMessages  int64                       `json:"unreadAdminMessages"`
}
