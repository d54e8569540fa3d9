package entity

import "time"

type ConsultationStatus string

const (
	ConsultationStatusPending  ConsultationStatus = "pending"
	ConsultationStatusAssigned ConsultationStatus = "assigned"
	ConsultationStatusRejected ConsultationStatus = "rejected"
)

// IsTerminal reports whether no further decision can be made.
func (s ConsultationStatus) IsTerminal() bool {
	return s == ConsultationStatusAssigned || s == ConsultationStatusRejected
}

type ConsultationType string

const (
	ConsultationTypeNutritionPlan    ConsultationType = "nutrition_plan"
	ConsultationTypeWeightManagement ConsultationType = "weight_management"
	ConsultationTypeSportsNutrition  ConsultationType = "sports_nutrition"
	ConsultationTypeMedicalNutrition ConsultationType = "medical_nutrition"
	ConsultationTypeGeneral          ConsultationType = "general"
)

func (t ConsultationType) IsValid() bool {
	switch t {
	case ConsultationTypeNutritionPlan, ConsultationTypeWeightManagement, ConsultationTypeSportsNutrition,
		ConsultationTypeMedicalNutrition, ConsultationTypeGeneral:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) IsValid() bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

// ConsultationAction is an admin decision on a pending request.
type ConsultationAction string

const (
	ConsultationActionAssign ConsultationAction = "assign"
	ConsultationActionReject ConsultationAction = "reject"
)

const DefaultRejectionReason = "Your request could not be accommodated at this time."

// MinGoalsLength is the shortest accepted goals statement.
const MinGoalsLength = 10

// ConsultationRequest is a user's ask to be paired with a specialist.
// UserName, UserEmail and Assessment are copies taken at submission time.
type ConsultationRequest struct {
	ID                     string             `bson:"_id,omitempty" json:"id"`
	UserID                 string             `bson:"user_id" json:"userId"`
	UserName               string             `bson:"user_name" json:"userName"`
	UserEmail              string             `bson:"user_email" json:"userEmail"`
	Type                   ConsultationType   `bson:"type" json:"type"`
	Goals                  string             `bson:"goals" json:"goals"`
	Urgency                Urgency            `bson:"urgency" json:"urgency"`
	Notes                  string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status                 ConsultationStatus `bson:"status" json:"status"`
	AssignedSpecialistID   string             `bson:"assigned_specialist_id,omitempty" json:"assignedSpecialistId,omitempty"`
	AssignedSpecialistName string             `bson:"assigned_specialist_name,omitempty" json:"assignedSpecialistName,omitempty"`
	RejectionReason        string             `bson:"rejection_reason,omitempty" json:"rejectionReason,omitempty"`
	Assessment             *Assessment        `bson:"assessment,omitempty" json:"assessment,omitempty"`
	DecidedBy              string             `bson:"decided_by,omitempty" json:"decidedBy,omitempty"`
	DecidedAt              *time.Time         `bson:"decided_at,omitempty" json:"decidedAt,omitempty"`
	CreatedAt              time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt              time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ConsultationDecision is the set of fields written when a request leaves pending.
type ConsultationDecision struct {
	Status                 ConsultationStatus
	AssignedSpecialistID   string
	AssignedSpecialistName string
	RejectionReason        string
	DecidedBy              string
	DecidedAt              time.Time
}
