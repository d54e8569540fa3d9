package contract

import (
	"context"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

type IAssessmentRepository interface {
	Create(ctx context.Context, assessment *entity.Assessment) error
	// GetFirstByUserID returns the oldest submission of the user.
	GetFirstByUserID(ctx context.Context, userID string) (*entity.Assessment, error)
	ListByUserID(ctx context.Context, userID string) ([]entity.Assessment, error)
}
