package mocks

import (
	"context"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// MockAdminUsecase is a mock of the admin console use case.
type MockAdminUsecase struct {
	ShouldFailList   bool
	ShouldFailDetail bool
	ShouldFailUpdate bool
	ShouldFailDelete bool
	ShouldFailStats  bool

	LastFilter entity.UserFilter
	LastUpdate usecasecontract.AdminUserUpdate
}

var _ usecasecontract.IAdminUseCase = (*MockAdminUsecase)(nil)

func NewMockAdminUsecase() *MockAdminUsecase {
	return &MockAdminUsecase{}
}

func (m *MockAdminUsecase) ListUsers(ctx context.Context, actor entity.Actor, filter entity.UserFilter) ([]entity.User, int64, error) {
	m.LastFilter = filter
	if m.ShouldFailList {
		return nil, 0, apperror.Forbidden("admin access required")
	}
	return []entity.User{{ID: "user-1", Name: "Sara", Email: "sara@example.com", Role: entity.UserRoleUser}}, 1, nil
}

func (m *MockAdminUsecase) GetUserDetail(ctx context.Context, actor entity.Actor, userID string) (*usecasecontract.UserDetail, error) {
	if m.ShouldFailDetail {
		return nil, apperror.NotFound("user not found")
	}
	return &usecasecontract.UserDetail{
		User:       &entity.User{ID: userID, Name: "Sara", PasswordHash: "secret-hash"},
		Assessment: &entity.Assessment{ID: "assessment-1", UserID: userID, Objective: "build muscle"},
	}, nil
}

func (m *MockAdminUsecase) UpdateUser(ctx context.Context, actor entity.Actor, userID string, update usecasecontract.AdminUserUpdate) (*entity.User, error) {
	m.LastUpdate = update
	if m.ShouldFailUpdate {
		return nil, apperror.Validation("you cannot change your own role")
	}
	user := &entity.User{ID: userID, Name: "Sara", Role: entity.UserRoleUser, IsActive: true}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	return user, nil
}

func (m *MockAdminUsecase) DeleteUser(ctx context.Context, actor entity.Actor, userID string) error {
	if m.ShouldFailDelete {
		return apperror.NotFound("user not found")
	}
	return nil
}

func (m *MockAdminUsecase) Stats(ctx context.Context, actor entity.Actor) (*entity.AdminStats, error) {
	if m.ShouldFailStats {
		return nil, apperror.Forbidden("admin access required")
	}
	return &entity.AdminStats{
		TotalUsers:           10,
		TotalSpecialists:     2,
		PendingConsultations: 3,
		AppointmentsByStatus: map[entity.AppointmentStatus]int64{entity.AppointmentStatusPending: 4},
	}, nil
}
