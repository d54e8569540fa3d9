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

// AdminUseCase backs the admin console user pages and dashboard.
type AdminUseCase struct {
	userRepo         contract.IUserRepository
	assessmentRepo   contract.IAssessmentRepository
	consultationRepo contract.IConsultationRepository
	appointmentRepo  contract.IAppointmentRepository
	messageRepo      contract.IMessageRepository
	tokenRepo        contract.ITokenRepository
	logger           usecasecontract.IAppLogger
}

func NewAdminUseCase(
	userRepo contract.IUserRepository,
	assessmentRepo contract.IAssessmentRepository,
	consultationRepo contract.IConsultationRepository,
	appointmentRepo contract.IAppointmentRepository,
	messageRepo contract.IMessageRepository,
	tokenRepo contract.ITokenRepository,
	logger usecasecontract.IAppLogger,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:         userRepo,
		assessmentRepo:   assessmentRepo,
		consultationRepo: consultationRepo,
		appointmentRepo:  appointmentRepo,
		messageRepo:      messageRepo,
		tokenRepo:        tokenRepo,
		logger:           logger,
	}
}

var _ usecasecontract.IAdminUseCase = (*AdminUseCase)(nil)

func (uc *AdminUseCase) ListUsers(ctx context.Context, actor entity.Actor, filter entity.UserFilter) ([]entity.User, int64, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, 0, err
	}
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, 0, apperror.Validation("invalid role %q", *filter.Role)
	}
	users, total, err := uc.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, 0, apperror.Internal("failed to list users", err)
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, total, nil
}

// GetUserDetail pairs the user with the first assessment found for them.
func (uc *AdminUseCase) GetUserDetail(ctx context.Context, actor entity.Actor, userID string) (*usecasecontract.UserDetail, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "user")
	}
	assessment, err := uc.assessmentRepo.GetFirstByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.Internal("failed to load assessment", err)
	}
	return &usecasecontract.UserDetail{User: user, Assessment: assessment}, nil
}

func (uc *AdminUseCase) UpdateUser(ctx context.Context, actor entity.Actor, userID string, update usecasecontract.AdminUserUpdate) (*entity.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "user")
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperror.Validation("name cannot be empty")
		}
		user.Name = name
	}
	if update.Role != nil {
		if !update.Role.IsValid() {
			return nil, apperror.Validation("invalid role %q", *update.Role)
		}
		if userID == actor.UserID && *update.Role != entity.UserRoleAdmin {
			return nil, apperror.Validation("you cannot remove your own admin role")
		}
		user.Role = *update.Role
	}
	deactivated := false
	if update.IsActive != nil {
		if userID == actor.UserID && !*update.IsActive {
			return nil, apperror.Validation("you cannot deactivate your own account")
		}
		deactivated = user.IsActive && !*update.IsActive
		user.IsActive = *update.IsActive
	}
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		uc.logger.Errorf("failed to update user %s: %v", userID, err)
		return nil, apperror.Internal("failed to update user", err)
	}
	if deactivated {
		if err := uc.tokenRepo.RevokeAllTokensForUser(ctx, userID, entity.TokenTypeRefresh); err != nil {
			uc.logger.Warnf("failed to revoke sessions of deactivated user %s: %v", userID, err)
		}
	}
	return updated, nil
}

// DeleteUser removes the account only. Appointments, messages and requests
// that reference it stay in place.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, actor entity.Actor, userID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if userID == actor.UserID {
		return apperror.Validation("you cannot delete your own account")
	}
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.NotFound("user not found")
		}
		return apperror.Internal("failed to delete user", err)
	}
	if err := uc.tokenRepo.RevokeAllTokensForUser(ctx, userID, entity.TokenTypeRefresh); err != nil {
		uc.logger.Warnf("failed to revoke sessions of deleted user %s: %v", userID, err)
	}
	return nil
}

func (uc *AdminUseCase) Stats(ctx context.Context, actor entity.Actor) (*entity.AdminStats, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	var stats entity.AdminStats
	var err error

	if stats.TotalUsers, err = uc.userRepo.CountUsers(ctx, nil); err != nil {
		return nil, apperror.Internal("failed to count users", err)
	}
	admin := entity.UserRoleAdmin
	if stats.TotalSpecialists, err = uc.userRepo.CountUsers(ctx, &admin); err != nil {
		return nil, apperror.Internal("failed to count specialists", err)
	}
	if stats.CompletedAssessments, err = uc.userRepo.CountCompletedAssessments(ctx); err != nil {
		return nil, apperror.Internal("failed to count assessments", err)
	}
	if stats.PendingConsultations, err = uc.consultationRepo.CountByStatus(ctx, entity.ConsultationStatusPending); err != nil {
		return nil, apperror.Internal("failed to count consultation requests", err)
	}
	if stats.AppointmentsByStatus, err = uc.appointmentRepo.CountByStatus(ctx); err != nil {
		return nil, apperror.Internal("failed to count appointments", err)
	}
	if stats.UnreadAdminMessages, err = uc.messageRepo.CountUnreadByRecipientRole(ctx, entity.UserRoleAdmin); err != nil {
		return nil, apperror.Internal("failed to count messages", err)
	}
	return &stats, nil
}
