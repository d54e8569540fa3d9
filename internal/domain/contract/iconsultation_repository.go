package contract

import (
	"context"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

type IConsultationRepository interface {
	Create(ctx context.Context, request *entity.ConsultationRequest) error
	GetByID(ctx context.Context, id string) (*entity.ConsultationRequest, error)
	HasPending(ctx context.Context, userID string) (bool, error)
	ListByStatus(ctx context.Context, status entity.ConsultationStatus) ([]entity.ConsultationRequest, error)
	ListByUserID(ctx context.Context, userID string) ([]entity.ConsultationRequest, error)
	// Decide applies the decision only while the request is still pending.
	// A request that already left pending yields apperror.ErrConflict.
	Decide(ctx context.Context, id string, decision entity.ConsultationDecision) (*entity.ConsultationRequest, error)
	CountByStatus(ctx context.Context, status entity.ConsultationStatus) (int64, error)
}
