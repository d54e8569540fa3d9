package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	oauthStateCookie  = "oauthState"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type AuthHandler struct {
	userUseCase   usecasecontract.IUserUseCase
	randomGen     contract.IRandomGenerator
	oauthConfig   *oauth2.Config
	userInfoURL   string
	secureCookies bool
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, randomGen contract.IRandomGenerator, clientID, clientSecret, baseURL string, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		userUseCase: uc,
		randomGen:   randomGen,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  baseURL + "/api/v1/auth/google/callback",
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL:   googleUserInfoURL,
		secureCookies: secureCookies,
	}
}

// SetProviderEndpoints points the flow at another OAuth2 provider.
func (h *AuthHandler) SetProviderEndpoints(endpoint oauth2.Endpoint, userInfoURL string) {
	h.oauthConfig.Endpoint = endpoint
	h.userInfoURL = userInfoURL
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *AuthHandler) HandleGoogleLogin(ctx *gin.Context) {
	if h.oauthConfig.ClientID == "" {
		ErrorHandler(ctx, http.StatusServiceUnavailable, "google login is not configured")
		return
	}

	state, err := h.randomGen.GenerateRandomToken(16)
	if err != nil {
		_ = ctx.Error(err)
		ErrorHandler(ctx, http.StatusInternalServerError, "failed to start login")
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(oauthStateCookie, state, 300, "/", "", h.secureCookies, true)

	ctx.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

func (h *AuthHandler) HandleGoogleCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	cookieState, err := ctx.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(ctx, http.StatusUnauthorized, "invalid CSRF state token")
		return
	}
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)

	code := ctx.Query("code")
	if code == "" {
		ErrorHandler(ctx, http.StatusBadRequest, "authorization code not provided")
		return
	}

	requestCtx := ctx.Request.Context()

	token, err := h.oauthConfig.Exchange(requestCtx, code)
	if err != nil {
		_ = ctx.Error(fmt.Errorf("oauth code exchange: %w", err))
		ErrorHandler(ctx, http.StatusUnauthorized, "failed to exchange authorization code")
		return
	}

	info, err := h.fetchUserInfo(ctx, token)
	if err != nil {
		_ = ctx.Error(err)
		ErrorHandler(ctx, http.StatusBadGateway, "failed to get user info")
		return
	}

	accessToken, refreshToken, err := h.userUseCase.LoginWithOAuth(requestCtx, info.Name, info.Email)
	if err != nil {
		HandleError(ctx, err)
		return
	}

	SuccessHandler(ctx, http.StatusOK, dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (h *AuthHandler) fetchUserInfo(ctx *gin.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := h.oauthConfig.Client(ctx.Request.Context(), token)
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return &info, nil
}
