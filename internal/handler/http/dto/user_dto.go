package dto

import (
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// RegisterRequest is the signup payload. The assessment is optional.
type RegisterRequest struct {
	Name       string             `json:"name" binding:"required,notblank,max=100"`
	Email      string             `json:"email" binding:"required,email"`
	Password   string             `json:"password" binding:"required,min=8,containsuppercase,containslowercase,containsdigit,containssymbol"`
	Assessment *AssessmentRequest `json:"assessment,omitempty"`
}

func (r RegisterRequest) ToInput() usecasecontract.RegisterInput {
	input := usecasecontract.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
	if r.Assessment != nil {
		a := r.Assessment.ToEntity()
		input.Assessment = &a
	}
	return input
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ProfileRequest struct {
	Goals              []string `json:"goals" binding:"omitempty,max=20,dive,max=200"`
	Habits             []string `json:"habits" binding:"omitempty,max=20,dive,max=200"`
	DietaryPreferences []string `json:"dietaryPreferences" binding:"omitempty,max=20,dive,max=100"`
	Bio                string   `json:"bio" binding:"max=1000"`
}

// UpdateProfileRequest only touches the fields that are present.
type UpdateProfileRequest struct {
	Name      *string         `json:"name" binding:"omitempty,notblank,max=100"`
	AvatarURL *string         `json:"avatarUrl"`
	Profile   *ProfileRequest `json:"profile"`
}

func (r UpdateProfileRequest) ToUpdate() usecasecontract.ProfileUpdate {
	update := usecasecontract.ProfileUpdate{Name: r.Name, AvatarURL: r.AvatarURL}
	if r.Profile != nil {
		update.Profile = &entity.Profile{
			Goals:              r.Profile.Goals,
			Habits:             r.Profile.Habits,
			DietaryPreferences: r.Profile.DietaryPreferences,
			Bio:                r.Profile.Bio,
		}
	}
	return update
}

type AssessmentRequest struct {
	Demographics struct {
		Age      int     `json:"age" binding:"required,min=1,max=120"`
		Gender   string  `json:"gender" binding:"required,max=30"`
		HeightCm float64 `json:"heightCm" binding:"required,gt=0"`
		WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
	} `json:"demographics"`
	Lifestyle struct {
		ActivityLevel      string   `json:"activityLevel" binding:"max=50"`
		SleepHours         float64  `json:"sleepHours" binding:"min=0,max=24"`
		WaterLitersPerDay  float64  `json:"waterLitersPerDay" binding:"min=0"`
		MealsPerDay        int      `json:"mealsPerDay" binding:"min=0,max=20"`
		DietaryPreferences []string `json:"dietaryPreferences"`
	} `json:"lifestyle"`
	Health struct {
		Conditions  []string `json:"conditions"`
		Allergies   []string `json:"allergies"`
		Medications []string `json:"medications"`
		Smoker      bool     `json:"smoker"`
		Pregnant    bool     `json:"pregnant"`
	} `json:"health"`
	Objective string `json:"objective" binding:"required,notblank,max=500"`
}

func (r AssessmentRequest) ToEntity() entity.Assessment {
	return entity.Assessment{
		Demographics: entity.Demographics{
			Age:      r.Demographics.Age,
			Gender:   r.Demographics.Gender,
			HeightCm: r.Demographics.HeightCm,
			WeightKg: r.Demographics.WeightKg,
		},
		Lifestyle: entity.Lifestyle{
			ActivityLevel:      r.Lifestyle.ActivityLevel,
			SleepHours:         r.Lifestyle.SleepHours,
			WaterLitersPerDay:  r.Lifestyle.WaterLitersPerDay,
			MealsPerDay:        r.Lifestyle.MealsPerDay,
			DietaryPreferences: r.Lifestyle.DietaryPreferences,
		},
		Health: entity.HealthFlags{
			Conditions:  r.Health.Conditions,
			Allergies:   r.Health.Allergies,
			Medications: r.Health.Medications,
			Smoker:      r.Health.Smoker,
			Pregnant:    r.Health.Pregnant,
		},
		Objective: r.Objective,
	}
}

// AdminUpdateUserRequest is what an admin may change on an account.
type AdminUpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,notblank,max=100"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin"`
	IsActive *bool   `json:"isActive"`
}

func (r AdminUpdateUserRequest) ToUpdate() usecasecontract.AdminUserUpdate {
	update := usecasecontract.AdminUserUpdate{Name: r.Name, IsActive: r.IsActive}
	if r.Role != nil {
		role := entity.UserRole(*r.Role)
		update.Role = &role
	}
	return update
}

type UserListQuery struct {
	Role   string `form:"role" binding:"omitempty,oneof=user admin"`
	Search string `form:"search" binding:"max=100"`
	Page   int64  `form:"page" binding:"omitempty,min=1"`
	Limit  int64  `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q UserListQuery) ToFilter() entity.UserFilter {
	filter := entity.UserFilter{Search: q.Search, Page: q.Page, Limit: q.Limit}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if q.Role != "" {
		role := entity.UserRole(q.Role)
		filter.Role = &role
	}
	return filter
}
