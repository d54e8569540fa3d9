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

var errInvalidCredentials = apperror.Unauthenticated("invalid credentials")

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	tokenRepo     contract.ITokenRepository
	assessmentUC  usecasecontract.IAssessmentUseCase
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	assessmentUC usecasecontract.IAssessmentUseCase,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		assessmentUC:  assessmentUC,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		config:        cfg,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register creates an account and, when the sign-up form carried one, submits
// the initial assessment.
func (uc *UserUsecase) Register(ctx context.Context, input usecasecontract.RegisterInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, apperror.Validation("invalid email format")
	}
	if err := uc.validator.ValidatePasswordStrength(input.Password); err != nil {
		return nil, apperror.Validation("weak password: %v", err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, apperror.Internal("failed to register user", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("user with email %s already exists", email)
	}

	hashedPassword, err := uc.hasher.HashPassword(input.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, apperror.Internal("failed to process password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.Conflict("user with email %s already exists", email)
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, apperror.Internal("failed to register user", err)
	}

	if input.Assessment != nil && uc.assessmentUC != nil {
		actor := entity.Actor{UserID: user.ID, Role: user.Role, Email: user.Email, Name: user.Name}
		saved, err := uc.assessmentUC.Submit(ctx, actor, *input.Assessment)
		if err != nil {
			// the account exists at this point, the assessment can be resubmitted
			uc.logger.Warnf("initial assessment for user %s not saved: %v", user.ID, err)
		} else {
			user.Assessment = saved.Snapshot()
			user.HasCompletedAssessment = true
		}
	}

	return user, nil
}

// Login checks credentials and issues an access/refresh token pair.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, "", "", errInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", apperror.Internal("failed to log in", err)
	}
	if user.PasswordHash == "" {
		// OAuth-only account
		return nil, "", "", errInvalidCredentials
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", errInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", "", apperror.Forbidden("account is deactivated")
	}

	accessToken, refreshToken, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

// issueTokens signs a new access token and stores a new refresh session.
func (uc *UserUsecase) issueTokens(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return "", "", apperror.Internal("failed to generate token", err)
	}

	refreshTokenExpiry := uc.config.GetRefreshTokenExpiry()
	if refreshTokenExpiry <= 0 {
		uc.logger.Errorf("invalid refresh token expiry configuration: %v", refreshTokenExpiry)
		return "", "", apperror.Internal("invalid refresh token expiry configuration", nil)
	}

	tokenID := uc.uuidGenerator.NewUUID()
	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, tokenID)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return "", "", apperror.Internal("failed to generate token", err)
	}

	now := time.Now()
	tokenEntity := &entity.Token{
		ID:        tokenID,
		UserID:    user.ID,
		TokenType: entity.TokenTypeRefresh,
		TokenHash: uc.hasher.HashString(refreshToken),
		ExpiresAt: now.Add(refreshTokenExpiry),
		CreatedAt: now,
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return "", "", apperror.Internal("failed to store token", err)
	}
	return accessToken, refreshToken, nil
}

// Authenticate resolves an access token to an active user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, apperror.Unauthenticated("invalid access token")
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthenticated("user no longer exists")
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, apperror.Internal("failed to authenticate", err)
	}
	if !user.IsActive {
		return nil, apperror.Unauthenticated("account is deactivated")
	}
	return user, nil
}

// RefreshToken rotates the refresh session named by the token's id.
func (uc *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", apperror.Unauthenticated("invalid refresh token")
	}

	storedToken, err := uc.tokenRepo.GetTokenByID(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", "", apperror.Unauthenticated("refresh token not found or invalidated, please log in again")
		}
		uc.logger.Errorf("failed to retrieve stored refresh token: %v", err)
		return "", "", apperror.Internal("failed to refresh token", err)
	}
	if storedToken.Revoke {
		return "", "", apperror.Unauthenticated("refresh token has been revoked, please log in again")
	}
	if storedToken.UserID != claims.UserID || !uc.hasher.CheckHash(refreshToken, storedToken.TokenHash) {
		uc.logger.Warnf("refresh token mismatch for user %s", claims.UserID)
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", apperror.Unauthenticated("invalid refresh token")
	}
	if storedToken.ExpiresAt.Before(time.Now()) {
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", apperror.Unauthenticated("refresh token expired, please log in again")
	}

	// the role may have changed since login
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", "", apperror.Unauthenticated("user no longer exists")
		}
		return "", "", apperror.Internal("failed to refresh token", err)
	}
	if !user.IsActive {
		return "", "", apperror.Unauthenticated("account is deactivated")
	}

	newAccessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate new access token during refresh: %v", err)
		return "", "", apperror.Internal("failed to generate new access token", err)
	}
	newRefreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, storedToken.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate new refresh token during refresh: %v", err)
		return "", "", apperror.Internal("failed to generate new refresh token", err)
	}

	err = uc.tokenRepo.UpdateToken(ctx, storedToken.ID, uc.hasher.HashString(newRefreshToken), time.Now().Add(uc.config.GetRefreshTokenExpiry()))
	if err != nil {
		uc.logger.Errorf("failed to update refresh token in db: %v", err)
		return "", "", apperror.Internal("failed to update token", err)
	}
	return newAccessToken, newRefreshToken, nil
}

// Logout revokes the refresh session. Unknown or malformed tokens are ignored.
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		uc.logger.Warnf("failed to parse refresh token on logout, assuming it's already invalid: %v", err)
		return nil
	}
	if err := uc.tokenRepo.RevokeToken(ctx, claims.TokenID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil
		}
		uc.logger.Errorf("failed to revoke refresh token for user %s: %v", claims.UserID, err)
		return apperror.Internal("failed to revoke token", err)
	}
	return nil
}

// LoginWithOAuth signs in a user verified by an external identity provider,
// creating the account on first use.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", "", apperror.Validation("identity provider returned no email")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return "", "", apperror.Internal("failed to log in", err)
	}

	if user == nil {
		if strings.TrimSpace(name) == "" {
			name = email
		}
		now := time.Now()
		user = &entity.User{
			ID:        uc.uuidGenerator.NewUUID(),
			Name:      strings.TrimSpace(name),
			Email:     email,
			Role:      entity.DefaultRole(),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to create oauth user: %v", err)
			return "", "", apperror.Internal("failed to create user", err)
		}
	}
	if !user.IsActive {
		return "", "", apperror.Forbidden("account is deactivated")
	}

	return uc.issueTokens(ctx, user)
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "user")
	}
	return user, nil
}

// UpdateProfile lets users edit their own name, avatar and coaching profile.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, actor entity.Actor, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, actor.UserID)
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
	if update.AvatarURL != nil {
		if *update.AvatarURL == "" {
			user.AvatarURL = nil
		} else {
			if err := uc.validator.ValidateURL(*update.AvatarURL); err != nil {
				return nil, apperror.Validation("avatarUrl must be a valid URL")
			}
			avatar := *update.AvatarURL
			user.AvatarURL = &avatar
		}
	}
	if update.Profile != nil {
		profile := *update.Profile
		user.Profile = &profile
	}
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update profile for user %s: %v", actor.UserID, err)
		return nil, apperror.Internal("failed to update profile", err)
	}
	return updated, nil
}

// ListSpecialists returns the admins that can be booked.
func (uc *UserUsecase) ListSpecialists(ctx context.Context) ([]entity.User, error) {
	role := entity.UserRoleAdmin
	users, _, err := uc.userRepo.ListUsers(ctx, entity.UserFilter{Role: &role, Limit: 100})
	if err != nil {
		return nil, apperror.Internal("failed to list specialists", err)
	}
	active := users[:0]
	for _, u := range users {
		if u.IsActive {
			active = append(active, u)
		}
	}
	return active, nil
}
