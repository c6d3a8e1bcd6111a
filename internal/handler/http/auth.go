package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/response"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/oauth"
)

const stateCookieName = "state"

type AuthHandler interface {
	// GoogleLogin exchanges a Google Sign-In ID token for a session record.
	GoogleLogin(w http.ResponseWriter, r *http.Request)
	// LoginWithGoogle starts the OAuth2 code flow.
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	// OAuthCallbackGoogle finishes the code flow.
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService   auth.AuthService
	googleService oauth.GoogleService
	callbackPath  string
}

// GoogleLogin implements AuthHandler.
func (a *AuthHandlerImpl) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.GoogleLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("GoogleLogin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("GoogleLogin validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	loginResponse, err := a.authService.LoginWithGoogleIDToken(r.Context(), loginReq)
	if err != nil {
		slog.Error("GoogleLogin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in with Google", "user_id", loginResponse.User.ID, "role", loginResponse.User.Role)
	response.OK(w, loginResponse)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state, err := a.googleService.GenerateState()
	if err != nil {
		slog.Error("LoginWithGoogle state error", "error", err)
		response.InternalServerError(w, "Failed to start Google login")
		return
	}

	cookie := &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     a.callbackPath,
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		response.Unauthorized(w, "Google login was not completed: "+errorValue)
		return
	}

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" {
		slog.Error("State cookie not found", "error", err)
		response.HandleError(w, auth.ErrInvalidState)
		return
	}

	if r.URL.Query().Get("state") != stateCookie.Value {
		slog.Error("State mismatch", "error", auth.ErrInvalidState)
		response.HandleError(w, auth.ErrInvalidState)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is required", nil)
		return
	}

	loginResponse, err := a.authService.LoginWithGoogleCode(r.Context(), code)
	if err != nil {
		slog.Error("Failed to login with Google", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:    stateCookieName,
		Value:   "",
		Path:    a.callbackPath,
		Expires: time.Unix(0, 0),
	})

	slog.Info("User logged in via Google OAuth", "user_id", loginResponse.User.ID)
	response.OK(w, loginResponse)
}

func NewAuthHandler(authService auth.AuthService, googleService oauth.GoogleService) AuthHandler {
	return &AuthHandlerImpl{
		authService:   authService,
		googleService: googleService,
		callbackPath:  "/api/auth/google/callback",
	}
}
