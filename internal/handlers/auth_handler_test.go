package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/portfoliosite/backend/internal/auth"
	"github.com/portfoliosite/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockAuthService is a mock implementation of AuthService
type mockAuthService struct {
	user  *models.User
	token string
	err   error
}

func (m *mockAuthService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.User, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return m.user, m.token, nil
}

func (m *mockAuthService) SignIn(ctx context.Context, req *models.SignInRequest) (*models.User, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return m.user, m.token, nil
}

func (m *mockAuthService) Profile(ctx context.Context, userID int) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func newAuthRouter(t *testing.T, svc AuthService) (chi.Router, *auth.TokenIssuer) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	r := chi.NewRouter()
	handler := NewAuthHandler(svc, time.Hour, false, logger)
	handler.RegisterRoutes(r, auth.VerifyToken(issuer))
	return r, issuer
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_SignUp(t *testing.T) {
	user := &models.User{ID: 1, Username: "alice", Email: "a@x.com", Name: "alice", Role: models.RoleEndUser}

	tests := []struct {
		name           string
		body           string
		svc            *mockAuthService
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success",
			body:           `{"username":"alice","email":"a@x.com","password":"secret1"}`,
			svc:            &mockAuthService{user: user, token: "tok123"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{"username":`,
			svc:            &mockAuthService{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "missing fields",
			body:           `{"username":"alice"}`,
			svc:            &mockAuthService{err: models.ErrValidation},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid input",
		},
		{
			name:           "duplicate identity",
			body:           `{"username":"alice","email":"a@x.com","password":"secret1"}`,
			svc:            &mockAuthService{err: models.ErrDuplicateIdentity},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email or username already in use",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newAuthRouter(t, tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
				assert.Nil(t, findCookie(t, rec, auth.TokenCookieName))
				return
			}

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Signup successful", body["message"])
			assert.Equal(t, "tok123", body["token"])

			cookie := findCookie(t, rec, auth.TokenCookieName)
			require.NotNil(t, cookie)
			assert.Equal(t, "tok123", cookie.Value)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, "/", cookie.Path)
			assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		})
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	user := &models.User{ID: 1, Username: "alice", Email: "a@x.com", Name: "alice", Role: models.RoleAdmin}

	tests := []struct {
		name           string
		svc            *mockAuthService
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success",
			svc:            &mockAuthService{user: user, token: "tok123"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			svc:            &mockAuthService{err: models.ErrNotFound},
			expectedStatus: http.StatusNotFound,
			expectedError:  "record not found",
		},
		{
			name:           "wrong password",
			svc:            &mockAuthService{err: models.ErrInvalidCredential},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newAuthRouter(t, tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"username":"alice","password":"secret1"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}
			assert.Equal(t, "Signin successful", body["message"])
			require.NotNil(t, findCookie(t, rec, auth.TokenCookieName))
		})
	}
}

func TestAuthHandler_SignOut(t *testing.T) {
	router, _ := newAuthRouter(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/signout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, auth.TokenCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthHandler_Profile(t *testing.T) {
	user := &models.User{ID: 7, Username: "alice", Email: "a@x.com", Name: "alice", Role: models.RoleEndUser}

	t.Run("missing token", func(t *testing.T) {
		router, _ := newAuthRouter(t, &mockAuthService{user: user})

		req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		router, issuer := newAuthRouter(t, &mockAuthService{user: user})

		token, err := issuer.Issue(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
		req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Profile loaded", body["message"])
	})
}
