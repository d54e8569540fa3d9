package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/metrics"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// ConsultationUseCase runs the request → assign/reject workflow.
type ConsultationUseCase struct {
	consultationRepo contract.IConsultationRepository
	userRepo         contract.IUserRepository
	uuidgen          contract.IUUIDGenerator
	logger           usecasecontract.IAppLogger
	notify           *dispatcher
}

func NewConsultationUseCase(
	consultationRepo contract.IConsultationRepository,
	userRepo contract.IUserRepository,
	uuidgen contract.IUUIDGenerator,
	notifier contract.INotifier,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *ConsultationUseCase {
	return &ConsultationUseCase{
		consultationRepo: consultationRepo,
		userRepo:         userRepo,
		uuidgen:          uuidgen,
		logger:           logger,
		notify:           newDispatcher(notifier, logger, cfg.GetNotificationTimeout()),
	}
}

var _ usecasecontract.IConsultationUseCase = (*ConsultationUseCase)(nil)

// Submit opens a pending request. A user may hold at most one pending request;
// the check and the insert are not atomic.
func (uc *ConsultationUseCase) Submit(ctx context.Context, actor entity.Actor, input usecasecontract.ConsultationInput) (*entity.ConsultationRequest, error) {
	goals := strings.TrimSpace(input.Goals)
	if utf8.RuneCountInString(goals) < entity.MinGoalsLength {
		return nil, apperror.Validation("goals must be at least %d characters", entity.MinGoalsLength)
	}
	if !input.Type.IsValid() {
		return nil, apperror.Validation("invalid consultation type %q", input.Type)
	}
	if !input.Urgency.IsValid() {
		return nil, apperror.Validation("invalid urgency %q", input.Urgency)
	}

	pending, err := uc.consultationRepo.HasPending(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal("failed to check pending requests", err)
	}
	if pending {
		return nil, apperror.Conflict("you already have a pending consultation request")
	}

	user, err := uc.userRepo.GetUserByID(ctx, actor.UserID)
	if err != nil {
		return nil, lookupErr(err, "user")
	}

	now := time.Now()
	request := &entity.ConsultationRequest{
		ID:         uc.uuidgen.NewUUID(),
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		Type:       input.Type,
		Goals:      goals,
		Urgency:    input.Urgency,
		Notes:      strings.TrimSpace(input.Notes),
		Status:     entity.ConsultationStatusPending,
		Assessment: user.Assessment.Snapshot(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.consultationRepo.Create(ctx, request); err != nil {
		uc.logger.Errorf("failed to create consultation request for user %s: %v", actor.UserID, err)
		return nil, apperror.Internal("failed to create consultation request", err)
	}
	return request, nil
}

// List returns the pending queue for admins and the caller's own history otherwise.
func (uc *ConsultationUseCase) List(ctx context.Context, actor entity.Actor) ([]entity.ConsultationRequest, error) {
	var (
		requests []entity.ConsultationRequest
		err      error
	)
	if actor.IsAdmin() {
		requests, err = uc.consultationRepo.ListByStatus(ctx, entity.ConsultationStatusPending)
	} else {
		requests, err = uc.consultationRepo.ListByUserID(ctx, actor.UserID)
	}
	if err != nil {
		return nil, apperror.Internal("failed to list consultation requests", err)
	}
	return requests, nil
}

// Decide assigns a specialist to, or rejects, a pending request.
func (uc *ConsultationUseCase) Decide(ctx context.Context, actor entity.Actor, input usecasecontract.DecisionInput) (*entity.ConsultationRequest, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if input.RequestID == "" {
		return nil, apperror.Validation("requestId is required")
	}

	decision := entity.ConsultationDecision{
		DecidedBy: actor.UserID,
		DecidedAt: time.Now(),
	}
	switch input.Action {
	case entity.ConsultationActionAssign:
		if input.SpecialistID == "" {
			return nil, apperror.Validation("specialistId is required to assign a request")
		}
		specialist, err := uc.userRepo.GetUserByID(ctx, input.SpecialistID)
		if err != nil {
			return nil, lookupErr(err, "specialist")
		}
		decision.Status = entity.ConsultationStatusAssigned
		decision.AssignedSpecialistID = specialist.ID
		decision.AssignedSpecialistName = specialist.Name
	case entity.ConsultationActionReject:
		decision.Status = entity.ConsultationStatusRejected
		decision.RejectionReason = strings.TrimSpace(input.Reason)
		if decision.RejectionReason == "" {
			decision.RejectionReason = entity.DefaultRejectionReason
		}
	case "":
		return nil, apperror.Validation("action is required")
	default:
		return nil, apperror.Validation("invalid action %q", input.Action)
	}

	current, err := uc.consultationRepo.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, lookupErr(err, "consultation request")
	}
	if current.Status.IsTerminal() {
		return nil, apperror.Conflict("consultation request is already %s", current.Status)
	}

	updated, err := uc.consultationRepo.Decide(ctx, input.RequestID, decision)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrConflict):
			return nil, apperror.Conflict("consultation request was decided concurrently")
		case errors.Is(err, apperror.ErrNotFound):
			return nil, apperror.NotFound("consultation request not found")
		}
		uc.logger.Errorf("failed to decide consultation request %s: %v", input.RequestID, err)
		return nil, apperror.Internal("failed to update consultation request", err)
	}

	metrics.IncConsultationDecision(string(input.Action))
	uc.notify.send(entity.Notification{
		Kind:           entity.NotificationConsultationDecided,
		RecipientName:  updated.UserName,
		RecipientEmail: updated.UserEmail,
		Consultation:   updated,
	})
	return updated, nil
}
