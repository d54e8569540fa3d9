package usecasecontract

import (
	"context"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Assessment *entity.Assessment
}

type ProfileUpdate struct {
	Name      *string
	AvatarURL *string
	Profile   *entity.Profile
}

// IUserUseCase defines the interface for account and session operations.
type IUserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	LoginWithOAuth(ctx context.Context, name, email string) (string, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, actor entity.Actor, update ProfileUpdate) (*entity.User, error)
	ListSpecialists(ctx context.Context) ([]entity.User, error)
}

type AdminUserUpdate struct {
	Name     *string
	Role     *entity.UserRole
	IsActive *bool
}

// UserDetail is a user next to their first recorded assessment.
type UserDetail struct {
	User       *entity.User       `json:"user"`
	Assessment *entity.Assessment `json:"assessment"`
}

type IAdminUseCase interface {
	ListUsers(ctx context.Context, actor entity.Actor, filter entity.UserFilter) ([]entity.User, int64, error)
	GetUserDetail(ctx context.Context, actor entity.Actor, userID string) (*UserDetail, error)
	UpdateUser(ctx context.Context, actor entity.Actor, userID string, update AdminUserUpdate) (*entity.User, error)
	DeleteUser(ctx context.Context, actor entity.Actor, userID string) error
	Stats(ctx context.Context, actor entity.Actor) (*entity.AdminStats, error)
}

type IAssessmentUseCase interface {
	Submit(ctx context.Context, actor entity.Actor, assessment entity.Assessment) (*entity.Assessment, error)
	GetMine(ctx context.Context, actor entity.Actor) (*entity.Assessment, error)
}
