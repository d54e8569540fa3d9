package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/medcharfeddine/nutricoach/internal/handler/http"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/middleware"
	mocks "github.com/medcharfeddine/nutricoach/internal/handler/http/mocks"
	randomgenerator "github.com/medcharfeddine/nutricoach/internal/infrastructure/random_generator"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error {
	return p.err
}

func newMockUseCases(userUsecase *mocks.MockUserUsecase) handler.UseCases {
	return handler.UseCases{
		User:         userUsecase,
		Assessment:   mocks.NewMockAssessmentUsecase(),
		Consultation: mocks.NewMockConsultationUsecase(),
		Appointment:  mocks.NewMockAppointmentUsecase(),
		Message:      mocks.NewMockMessageUsecase(),
		Content:      mocks.NewMockContentUsecase(),
		Category:     mocks.NewMockCategoryUsecase(),
		Branding:     mocks.NewMockBrandingUsecase(),
		Media:        mocks.NewMockMediaUsecase(),
		Admin:        mocks.NewMockAdminUsecase(),
	}
}

func setupFullRouter(userUsecase *mocks.MockUserUsecase, db handler.Pinger, cfg handler.RouterConfig) *gin.Engine {
	if cfg.RateLimitPerSecond == 0 {
		cfg.RateLimitPerSecond = 1000
	}
	engine := gin.New()
	router := handler.NewRouter(newMockUseCases(userUsecase), db, randomgenerator.NewRandomGenerator(), zap.NewNop(), cfg)
	router.SetupRoutes(engine)
	return engine
}

func doRequest(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_ProtectedRoutesRequireBearerToken(t *testing.T) {
	r := setupFullRouter(mocks.NewMockUserUsecase(), fakePinger{}, handler.RouterConfig{})

	w := doRequest(r, "GET", "/api/v1/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, "GET", "/api/v1/me", "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, "GET", "/api/v1/me", "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"mock-user-id"`)
}

func TestRouter_InvalidTokenRejected(t *testing.T) {
	userUsecase := mocks.NewMockUserUsecase()
	userUsecase.ShouldFailAuthenticate = true
	r := setupFullRouter(userUsecase, fakePinger{}, handler.RouterConfig{})

	w := doRequest(r, "GET", "/api/v1/appointments", "Bearer expired")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid access token")
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	r := setupFullRouter(mocks.NewMockUserUsecase(), fakePinger{}, handler.RouterConfig{})
	w := doRequest(r, "GET", "/api/v1/admin/stats", "Bearer user-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = setupFullRouter(mocks.NewMockUserUsecase().AsAdmin(), fakePinger{}, handler.RouterConfig{})
	w = doRequest(r, "GET", "/api/v1/admin/stats", "Bearer admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	r := setupFullRouter(mocks.NewMockUserUsecase(), fakePinger{}, handler.RouterConfig{})

	for _, path := range []string{"/api/v1/content", "/api/v1/categories", "/api/v1/branding", "/api/v1/media/public-1"} {
		w := doRequest(r, "GET", path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_Healthz(t *testing.T) {
	r := setupFullRouter(mocks.NewMockUserUsecase(), fakePinger{}, handler.RouterConfig{})
	w := doRequest(r, "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	r = setupFullRouter(mocks.NewMockUserUsecase(), fakePinger{err: errors.New("no reachable servers")}, handler.RouterConfig{})
	w = doRequest(r, "GET", "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestRouter_Metrics(t *testing.T) {
	r := setupFullRouter(mocks.NewMockUserUsecase(), fakePinger{}, handler.RouterConfig{})
	w := doRequest(r, "GET", "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	r = setupFullRouter(mocks.NewMockUserUsecase(), fakePinger{}, handler.RouterConfig{MetricsEnabled: true})
	doRequest(r, "GET", "/api/v1/branding", "")
	w = doRequest(r, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nutricoach_http_request_duration_seconds")
}

func TestRouter_RequestID(t *testing.T) {
	r := setupFullRouter(mocks.NewMockUserUsecase(), fakePinger{}, handler.RouterConfig{})

	w := doRequest(r, "GET", "/healthz", "")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set(middleware.RequestIDHeader, "6f1d9a0e-8c47-4c2b-9d6e-0c0a1b2c3d4e")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "6f1d9a0e-8c47-4c2b-9d6e-0c0a1b2c3d4e", w.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set(middleware.RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_RateLimit(t *testing.T) {
	r := setupFullRouter(mocks.NewMockUserUsecase(), fakePinger{}, handler.RouterConfig{RateLimitPerSecond: 1})

	w := doRequest(r, "GET", "/api/v1/branding", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "GET", "/api/v1/branding", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRouter_PanicRecovered(t *testing.T) {
	engine := gin.New()
	engine.Use(middleware.Recovery(zap.NewNop()))
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := doRequest(engine, "GET", "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
