package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	RefreshToken(*gin.Context)
	Logout(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateCurrentUser(*gin.Context)
	ListSpecialists(*gin.Context)
	SubmitAssessment(*gin.Context)
	GetMyAssessment(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase       usecasecontract.IUserUseCase
	assessmentUsecase usecasecontract.IAssessmentUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, assessmentUsecase usecasecontract.IAssessmentUseCase) *UserHandler {
	return &UserHandler{
		userUsecase:       userUsecase,
		assessmentUsecase: assessmentUsecase,
	}
}

// Register handles user signup, optionally with an initial assessment.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// RefreshToken rotates a refresh token into a new token pair.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	accessToken, refreshToken, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}

// Logout revokes the session behind the given refresh token. It does not
// require an access token.
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		HandleError(c, err)
		return
	}

	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), actor.UserID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), actor, req.ToUpdate())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) ListSpecialists(c *gin.Context) {
	specialists, err := h.userUsecase.ListSpecialists(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToSpecialistResponses(specialists))
}

func (h *UserHandler) SubmitAssessment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.AssessmentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	assessment, err := h.assessmentUsecase.Submit(c.Request.Context(), actor, req.ToEntity())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, assessment)
}

func (h *UserHandler) GetMyAssessment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	assessment, err := h.assessmentUsecase.GetMine(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, assessment)
}
