package contract

import (
	"context"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

// IUserRepository persists accounts. Lookups of a missing user return an
// error wrapping apperror.ErrNotFound.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail matches the lower-cased address.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetFirstAdmin returns the earliest created admin.
	GetFirstAdmin(ctx context.Context) (*entity.User, error)
	// UpdateUser replaces the stored user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// SetAssessment embeds the snapshot and marks the assessment as completed.
	SetAssessment(ctx context.Context, userID string, snapshot *entity.Assessment) error
	ListUsers(ctx context.Context, filter entity.UserFilter) ([]entity.User, int64, error)
	CountUsers(ctx context.Context, role *entity.UserRole) (int64, error)
	CountCompletedAssessments(ctx context.Context) (int64, error)
	// DeleteUser removes a user by ID. Referencing records are left untouched.
	DeleteUser(ctx context.Context, id string) error
}
