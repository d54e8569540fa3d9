package contract

import (
	"context"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	// FindHoldingSlots returns pending and confirmed appointments of the
	// specialist whose date falls in [from, to).
	FindHoldingSlots(ctx context.Context, specialistID string, from, to time.Time) ([]entity.Appointment, error)
	List(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	// UpdateStatus writes the changes only while the stored status equals from.
	UpdateStatus(ctx context.Context, id string, from entity.AppointmentStatus, changes entity.AppointmentChanges) (*entity.Appointment, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[entity.AppointmentStatus]int64, error)
}
