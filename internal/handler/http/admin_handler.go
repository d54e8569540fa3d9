package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// AdminHandler is the user management console.
type AdminHandler struct {
	adminUsecase usecasecontract.IAdminUseCase
}

func NewAdminHandler(uc usecasecontract.IAdminUseCase) *AdminHandler {
	return &AdminHandler{adminUsecase: uc}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var q dto.UserListQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	filter := q.ToFilter()
	users, total, err := h.adminUsecase.ListUsers(c.Request.Context(), actor, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserListResponse{
		Items: dto.ToUserResponses(users),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	detail, err := h.adminUsecase.GetUserDetail(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{
		"user":       dto.ToUserResponse(*detail.User),
		"assessment": detail.Assessment,
	})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.AdminUpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.adminUsecase.UpdateUser(c.Request.Context(), actor, c.Param("id"), req.ToUpdate())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.adminUsecase.DeleteUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted")
}

func (h *AdminHandler) Stats(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	stats, err := h.adminUsecase.Stats(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}
