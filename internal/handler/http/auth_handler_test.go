package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/medcharfeddine/nutricoach/internal/handler/http"
	mocks "github.com/medcharfeddine/nutricoach/internal/handler/http/mocks"
	randomgenerator "github.com/medcharfeddine/nutricoach/internal/infrastructure/random_generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func setupAuthRouter(h *handler.AuthHandler) *gin.Engine {
	r := gin.Default()
	r.GET("/auth/google/login", h.HandleGoogleLogin)
	r.GET("/auth/google/callback", h.HandleGoogleCallback)
	return r
}

// fakeProvider serves the token and userinfo endpoints of an OAuth2 provider.
func fakeProvider(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "provider-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer provider-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"email": "nour@example.com", "name": "Nour"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestAuthHandler(t *testing.T, userUsecase *mocks.MockUserUsecase) *handler.AuthHandler {
	h := handler.NewAuthHandler(userUsecase, randomgenerator.NewRandomGenerator(), "client-id", "client-secret", "http://localhost:8080", false)
	srv := fakeProvider(t)
	h.SetProviderEndpoints(oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, srv.URL+"/userinfo")
	return h
}

func callback(r http.Handler, query, cookieState string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/auth/google/callback?"+query, nil)
	if cookieState != "" {
		req.AddCookie(&http.Cookie{Name: "oauthState", Value: cookieState})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGoogleLogin_NotConfigured(t *testing.T) {
	h := handler.NewAuthHandler(mocks.NewMockUserUsecase(), randomgenerator.NewRandomGenerator(), "", "", "http://localhost:8080", false)
	r := setupAuthRouter(h)

	w := callback(r, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest("GET", "/auth/google/login", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGoogleLogin_RedirectsWithState(t *testing.T) {
	r := setupAuthRouter(newTestAuthHandler(t, mocks.NewMockUserUsecase()))

	req := httptest.NewRequest("GET", "/auth/google/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "client-id", location.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:8080/api/v1/auth/google/callback", location.Query().Get("redirect_uri"))

	var stateCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "oauthState" {
			stateCookie = c
		}
	}
	require.NotNil(t, stateCookie)
	assert.True(t, stateCookie.HttpOnly)
	assert.Equal(t, stateCookie.Value, location.Query().Get("state"))
}

func TestGoogleCallback_StateMismatch(t *testing.T) {
	userUsecase := mocks.NewMockUserUsecase()
	r := setupAuthRouter(newTestAuthHandler(t, userUsecase))

	w := callback(r, "state=abc&code=good-code", "xyz")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, userUsecase.LastOAuthEmail)
}

func TestGoogleCallback_MissingCode(t *testing.T) {
	r := setupAuthRouter(newTestAuthHandler(t, mocks.NewMockUserUsecase()))

	w := callback(r, "state=abc", "abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoogleCallback_ExchangeFails(t *testing.T) {
	r := setupAuthRouter(newTestAuthHandler(t, mocks.NewMockUserUsecase()))

	w := callback(r, "state=abc&code=bad-code", "abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoogleCallback_Success(t *testing.T) {
	userUsecase := mocks.NewMockUserUsecase()
	r := setupAuthRouter(newTestAuthHandler(t, userUsecase))

	w := callback(r, "state=abc&code=good-code", "abc")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
	assert.Equal(t, "nour@example.com", userUsecase.LastOAuthEmail)
	assert.Equal(t, "Nour", userUsecase.LastOAuthName)
}

func TestGoogleCallback_DeactivatedAccount(t *testing.T) {
	userUsecase := mocks.NewMockUserUsecase()
	userUsecase.ShouldFailLoginWithOAuth = true
	r := setupAuthRouter(newTestAuthHandler(t, userUsecase))

	w := callback(r, "state=abc&code=good-code", "abc")

	assert.Equal(t, http.StatusForbidden, w.Code)
}
