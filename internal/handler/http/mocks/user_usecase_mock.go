package mocks

import (
	"context"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister        bool
	ShouldFailLogin           bool
	ShouldFailGetByID         bool
	ShouldFailUpdateProfile   bool
	ShouldFailRefreshToken    bool
	ShouldFailLogout          bool
	ShouldFailAuthenticate    bool
	ShouldFailLoginWithOAuth  bool
	ShouldFailListSpecialists bool

	// Return values
	MockUser         entity.User
	MockSpecialists  []entity.User
	MockAccessToken  string
	MockRefreshToken string

	// Captured arguments
	LastRegisterInput usecasecontract.RegisterInput
	LastProfileUpdate usecasecontract.ProfileUpdate
	LastOAuthName     string
	LastOAuthEmail    string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Name:      "Test User",
			Email:     "test@example.com",
			Role:      entity.UserRoleUser,
			IsActive:  true,
			CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
		MockSpecialists: []entity.User{
			{ID: "specialist-1", Name: "Dr. Amal", Email: "amal@example.com", Role: entity.UserRoleAdmin, IsActive: true},
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

// AsAdmin makes the authenticated user an admin.
func (m *MockUserUsecase) AsAdmin() *MockUserUsecase {
	m.MockUser.ID = "mock-admin-id"
	m.MockUser.Role = entity.UserRoleAdmin
	return m
}

func (m *MockUserUsecase) Register(ctx context.Context, input usecasecontract.RegisterInput) (*entity.User, error) {
	m.LastRegisterInput = input
	if m.ShouldFailRegister {
		return nil, apperror.Conflict("user with this email already exists")
	}
	user := m.MockUser
	user.Name = input.Name
	user.Email = input.Email
	user.HasCompletedAssessment = input.Assessment != nil
	return &user, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", apperror.Unauthenticated("Invalid credentials")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, apperror.Unauthenticated("invalid access token")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", apperror.Unauthenticated("invalid or expired refresh token")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.ShouldFailLogout {
		return apperror.Internal("failed to revoke token", context.DeadlineExceeded)
	}
	return nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	m.LastOAuthName = name
	m.LastOAuthEmail = email
	if m.ShouldFailLoginWithOAuth {
		return "", "", apperror.Forbidden("account is deactivated")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, apperror.NotFound("user not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, actor entity.Actor, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	m.LastProfileUpdate = update
	if m.ShouldFailUpdateProfile {
		return nil, apperror.Validation("avatarUrl must be a valid URL")
	}
	user := m.MockUser
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Profile != nil {
		user.Profile = update.Profile
	}
	return &user, nil
}

func (m *MockUserUsecase) ListSpecialists(ctx context.Context) ([]entity.User, error) {
	if m.ShouldFailListSpecialists {
		return nil, apperror.Internal("failed to list specialists", context.Canceled)
	}
	return m.MockSpecialists, nil
}

// MockAssessmentUsecase is a mock of the assessment use case.
type MockAssessmentUsecase struct {
	ShouldFailSubmit bool
	ShouldFailGet    bool

	LastAssessment entity.Assessment
}

var _ usecasecontract.IAssessmentUseCase = (*MockAssessmentUsecase)(nil)

func NewMockAssessmentUsecase() *MockAssessmentUsecase {
	return &MockAssessmentUsecase{}
}

func (m *MockAssessmentUsecase) Submit(ctx context.Context, actor entity.Actor, assessment entity.Assessment) (*entity.Assessment, error) {
	m.LastAssessment = assessment
	if m.ShouldFailSubmit {
		return nil, apperror.Validation("age must be between 1 and 120")
	}
	assessment.ID = "assessment-1"
	assessment.UserID = actor.UserID
	return &assessment, nil
}

func (m *MockAssessmentUsecase) GetMine(ctx context.Context, actor entity.Actor) (*entity.Assessment, error) {
	if m.ShouldFailGet {
		return nil, apperror.NotFound("assessment not found")
	}
	return &entity.Assessment{ID: "assessment-1", UserID: actor.UserID, Objective: "lose weight"}, nil
}
