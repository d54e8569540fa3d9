package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// AssessmentUseCase records health-intake submissions.
type AssessmentUseCase struct {
	assessmentRepo contract.IAssessmentRepository
	userRepo       contract.IUserRepository
	uuidgen        contract.IUUIDGenerator
	logger         usecasecontract.IAppLogger
}

func NewAssessmentUseCase(assessmentRepo contract.IAssessmentRepository, userRepo contract.IUserRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *AssessmentUseCase {
	return &AssessmentUseCase{
		assessmentRepo: assessmentRepo,
		userRepo:       userRepo,
		uuidgen:        uuidgen,
		logger:         logger,
	}
}

var _ usecasecontract.IAssessmentUseCase = (*AssessmentUseCase)(nil)

func validateAssessment(a entity.Assessment) error {
	d := a.Demographics
	if d.Age < 1 || d.Age > 120 {
		return apperror.Validation("age must be between 1 and 120")
	}
	if d.HeightCm < 0 || d.HeightCm > 300 {
		return apperror.Validation("heightCm is out of range")
	}
	if d.WeightKg < 0 || d.WeightKg > 500 {
		return apperror.Validation("weightKg is out of range")
	}
	l := a.Lifestyle
	if l.SleepHours < 0 || l.SleepHours > 24 {
		return apperror.Validation("sleepHours must be between 0 and 24")
	}
	if l.WaterLitersPerDay < 0 || l.MealsPerDay < 0 {
		return apperror.Validation("lifestyle values cannot be negative")
	}
	if strings.TrimSpace(a.Objective) == "" {
		return apperror.Validation("objective is required")
	}
	return nil
}

// Submit stores a new record and copies it onto the user. Earlier records are
// kept; nothing enforces one assessment per user.
func (uc *AssessmentUseCase) Submit(ctx context.Context, actor entity.Actor, assessment entity.Assessment) (*entity.Assessment, error) {
	if err := validateAssessment(assessment); err != nil {
		return nil, err
	}

	assessment.ID = uc.uuidgen.NewUUID()
	assessment.UserID = actor.UserID
	assessment.Objective = strings.TrimSpace(assessment.Objective)
	assessment.CreatedAt = time.Now()

	if err := uc.assessmentRepo.Create(ctx, &assessment); err != nil {
		uc.logger.Errorf("failed to store assessment for user %s: %v", actor.UserID, err)
		return nil, apperror.Internal("failed to save assessment", err)
	}
	if err := uc.userRepo.SetAssessment(ctx, actor.UserID, assessment.Snapshot()); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		uc.logger.Errorf("failed to embed assessment on user %s: %v", actor.UserID, err)
		return nil, apperror.Internal("failed to save assessment", err)
	}
	return &assessment, nil
}

// GetMine returns the first record the user submitted.
func (uc *AssessmentUseCase) GetMine(ctx context.Context, actor entity.Actor) (*entity.Assessment, error) {
	assessment, err := uc.assessmentRepo.GetFirstByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, lookupErr(err, "assessment")
	}
	return assessment, nil
}
