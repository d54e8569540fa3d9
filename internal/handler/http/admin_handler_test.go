package http_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	handler "github.com/medcharfeddine/nutricoach/internal/handler/http"
	mocks "github.com/medcharfeddine/nutricoach/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminRouter(h *handler.AdminHandler, actor *entity.Actor) *gin.Engine {
	r := gin.Default()
	admin := r.Group("/admin", withActor(actor))
	admin.GET("/users", h.ListUsers)
	admin.GET("/users/:id", h.GetUser)
	admin.PUT("/users/:id", h.UpdateUser)
	admin.DELETE("/users/:id", h.DeleteUser)
	admin.GET("/stats", h.Stats)
	return r
}

func TestAdminListUsers(t *testing.T) {
	adminUsecase := mocks.NewMockAdminUsecase()
	actor := testAdmin
	r := setupAdminRouter(handler.NewAdminHandler(adminUsecase), &actor)

	w := performJSON(r, "GET", "/admin/users?role=user&search=sar", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	require.NotNil(t, adminUsecase.LastFilter.Role)
	assert.Equal(t, entity.UserRoleUser, *adminUsecase.LastFilter.Role)
	assert.Equal(t, int64(1), adminUsecase.LastFilter.Page)
	assert.Equal(t, int64(20), adminUsecase.LastFilter.Limit)

	w = performJSON(r, "GET", "/admin/users?role=superuser", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminGetUser_HidesPasswordHash(t *testing.T) {
	actor := testAdmin
	r := setupAdminRouter(handler.NewAdminHandler(mocks.NewMockAdminUsecase()), &actor)

	w := performJSON(r, "GET", "/admin/users/user-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "build muscle")
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestAdminUpdateUser(t *testing.T) {
	adminUsecase := mocks.NewMockAdminUsecase()
	actor := testAdmin
	r := setupAdminRouter(handler.NewAdminHandler(adminUsecase), &actor)

	w := performJSON(r, "PUT", "/admin/users/user-1", map[string]interface{}{"role": "admin", "isActive": false})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	require.NotNil(t, adminUsecase.LastUpdate.IsActive)
	assert.False(t, *adminUsecase.LastUpdate.IsActive)

	adminUsecase.ShouldFailUpdate = true
	w = performJSON(r, "PUT", "/admin/users/admin-1", map[string]interface{}{"role": "user"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteAndStats(t *testing.T) {
	adminUsecase := mocks.NewMockAdminUsecase()
	actor := testAdmin
	r := setupAdminRouter(handler.NewAdminHandler(adminUsecase), &actor)

	w := performJSON(r, "DELETE", "/admin/users/user-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, "GET", "/admin/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pendingConsultations":3`)

	adminUsecase.ShouldFailStats = true
	w = performJSON(r, "GET", "/admin/stats", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
