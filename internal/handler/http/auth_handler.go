package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/smart-agroconnect/api/internal/handler/http/dto"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

// AuthHandler drives the Google OAuth flow. A completed flow funnels into the
// federated-identity login with a "google:{subject}" external ID.
type AuthHandler struct {
	UserUseCase usecasecontract.IUserUseCase
	BaseURL     string
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, baseURL string) *AuthHandler {
	return &AuthHandler{
		UserUseCase: uc,
		BaseURL:     baseURL,
	}
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *AuthHandler) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  h.BaseURL + "/api/auth/google/callback",
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func (h *AuthHandler) HandleGoogleLogin(ctx *gin.Context) {
	b := make([]byte, 16)
	rand.Read(b)
	oauthStateString := base64.URLEncoding.EncodeToString(b)
	ctx.SetCookie("oauthState", oauthStateString, 300, "/", "", false, true)

	url := h.googleOauthConfig().AuthCodeURL(oauthStateString)
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *AuthHandler) HandleGoogleCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	cookieState, err := ctx.Cookie("oauthState")

	if err != nil || state != cookieState {
		ctx.String(http.StatusUnauthorized, "invalid CSRF state token\n")
		return
	}
	ctx.SetCookie("oauthState", "", -1, "/", "", false, true)

	code := ctx.Query("code")
	if code == "" {
		ctx.String(http.StatusBadRequest, "authorization code not provided")
		return
	}

	requestCtx := ctx.Request.Context()

	token, err := h.googleOauthConfig().Exchange(requestCtx, code)
	if err != nil {
		ctx.String(http.StatusInternalServerError, fmt.Sprintf("failed to exchange authorization for token: %v\n", err))
		return
	}

	client := h.googleOauthConfig().Client(requestCtx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		ctx.String(http.StatusInternalServerError, fmt.Sprintf("failed to get user info: %v", err))
		return
	}
	defer resp.Body.Close()

	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		ctx.String(http.StatusInternalServerError, fmt.Sprintf("failed to decode user info: %v\n", err))
		return
	}

	payload, err := h.UserUseCase.FirebaseAuth(requestCtx, usecasecontract.FirebaseAuthInput{
		FirebaseUID: "google:" + userInfo.ID,
		Email:       userInfo.Email,
		Name:        userInfo.Name,
	})
	if err != nil {
		RespondError(ctx, err)
		return
	}

	status := http.StatusOK
	if payload.RequiresProfileCompletion {
		status = http.StatusCreated
	}
	SuccessHandler(ctx, status, dto.ToAuthResponse(payload.User, payload.Token, payload.RequiresProfileCompletion))
}
