package entity

import (
	"time"
)

// User represents a registered account. Admins double as specialists.
type User struct {
	ID                     string      `bson:"_id,omitempty" json:"id"`
	Name                   string      `bson:"name" json:"name"`
	Email                  string      `bson:"email" json:"email"`
	PasswordHash           string      `bson:"password_hash" json:"-"`
	Role                   UserRole    `bson:"role" json:"role"`
	IsActive               bool        `bson:"is_active" json:"isActive"`
	HasCompletedAssessment bool        `bson:"has_completed_assessment" json:"hasCompletedAssessment"`
	Profile                *Profile    `bson:"profile,omitempty" json:"profile,omitempty"`
	Assessment             *Assessment `bson:"assessment,omitempty" json:"assessment,omitempty"`
	AvatarURL              *string     `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt              time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt              time.Time   `bson:"updated_at" json:"updatedAt"`
}

// Profile holds self-reported coaching preferences.
type Profile struct {
	Goals              []string `bson:"goals,omitempty" json:"goals,omitempty"`
	Habits             []string `bson:"habits,omitempty" json:"habits,omitempty"`
	DietaryPreferences []string `bson:"dietary_preferences,omitempty" json:"dietaryPreferences,omitempty"`
	Bio                string   `bson:"bio,omitempty" json:"bio,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// IsSpecialist reports whether the user can be booked or assigned.
func (u *User) IsSpecialist() bool {
	return u.Role == UserRoleAdmin
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role   *UserRole
	Search string
	Page   int64
	Limit  int64
}
