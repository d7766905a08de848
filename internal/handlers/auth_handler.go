package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/portfoliosite/backend/internal/auth"
	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic
type AuthService interface {
	// SignUp validates credentials, creates the user record and issues a
	// session token.
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.User, string, error)
	// SignIn authenticates a user by username or email and issues a session
	// token.
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.User, string, error)
	// Profile loads the user record behind a verified token.
	Profile(ctx context.Context, userID int) (*models.User, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService  AuthService
	tokenExpiry  time.Duration
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, tokenExpiry time.Duration, cookieSecure bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		authService:  authService,
		tokenExpiry:  tokenExpiry,
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, verifyToken func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.SignUp)
		r.Post("/signin", h.SignIn)
		r.Get("/signout", h.SignOut)
		r.Group(func(r chi.Router) {
			r.Use(verifyToken)
			r.Get("/profile", h.Profile)
		})
	})
}

// SignUp handles POST /auth/signup
// @Summary Register a new user
// @Description Create a user account. The role defaults to enduser; unknown roles are coerced to enduser. Returns the session token both in the body and as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignUpRequest true "Sign-up request"
// @Success 200 {object} map[string]any "Signup successful"
// @Failure 400 {object} map[string]string "Missing fields or duplicate username/email"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.authService.SignUp(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.setTokenCookie(w, token)
	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Signup successful",
		"token":   token,
		"user":    user,
	})
}

// SignIn handles POST /auth/signin
// @Summary Sign in
// @Description Authenticate with a username or email plus password. Returns the session token both in the body and as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignInRequest true "Sign-in request"
// @Success 200 {object} map[string]any "Signin successful"
// @Failure 400 {object} map[string]string "Missing fields or invalid password"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.authService.SignIn(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.setTokenCookie(w, token)
	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Signin successful",
		"token":   token,
		"user":    user,
	})
}

// SignOut handles GET /auth/signout. Sign-out only clears the cookie; an
// already issued token stays valid until it expires (stateless sessions, no
// revocation list).
// @Summary Sign out
// @Description Clear the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Signed out"
// @Router /auth/signout [get]
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Signed out successfully"})
}

// Profile handles GET /auth/profile
// @Summary Get current user profile
// @Description Return the profile of the authenticated user.
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "Profile loaded"
// @Failure 401 {object} map[string]string "Missing token"
// @Failure 403 {object} map[string]string "Invalid token"
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.authService.Profile(r.Context(), claims.UserID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Profile loaded",
		"user":    user,
	})
}

// setTokenCookie sets the session token as an HTTP-only cookie
func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
