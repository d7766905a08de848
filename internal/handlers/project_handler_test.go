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

// mockProjectService is a mock implementation of ProjectService
type mockProjectService struct {
	project  *models.Project
	projects []models.Project
	deleted  int
	err      error
}

func (m *mockProjectService) Create(ctx context.Context, req *models.ProjectRequest) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

func (m *mockProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.projects, nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id int) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

func (m *mockProjectService) Update(ctx context.Context, id int, req *models.ProjectRequest) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

func (m *mockProjectService) Delete(ctx context.Context, id int) error {
	return m.err
}

func (m *mockProjectService) DeleteAll(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.deleted, nil
}

func newProjectRouter(t *testing.T, svc ProjectService) (chi.Router, *auth.TokenIssuer) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	r := chi.NewRouter()
	handler := NewProjectHandler(svc, logger)
	handler.RegisterRoutes(r, auth.VerifyToken(issuer), auth.RequireAdmin)
	return r, issuer
}

func issueToken(t *testing.T, issuer *auth.TokenIssuer, role models.Role) string {
	t.Helper()
	token, err := issuer.Issue(&models.User{ID: 1, Username: "u", Email: "u@x.com", Name: "u", Role: role})
	require.NoError(t, err)
	return token
}

func TestProjectHandler_AdminGate(t *testing.T) {
	project := &models.Project{ID: 1, Title: "Graphery", Tech: []string{"React"}}
	body := `{"title":"Graphery","tech":["React"]}`

	tests := []struct {
		name           string
		token          func(t *testing.T, issuer *auth.TokenIssuer) string
		expectedStatus int
	}{
		{
			name:           "no token",
			token:          func(t *testing.T, issuer *auth.TokenIssuer) string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "garbage token",
			token: func(t *testing.T, issuer *auth.TokenIssuer) string {
				return "not.a.token"
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "enduser token",
			token: func(t *testing.T, issuer *auth.TokenIssuer) string {
				return issueToken(t, issuer, models.RoleEndUser)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "admin token",
			token: func(t *testing.T, issuer *auth.TokenIssuer) string {
				return issueToken(t, issuer, models.RoleAdmin)
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, issuer := newProjectRouter(t, &mockProjectService{project: project})

			req := httptest.NewRequest(http.MethodPost, "/project/", strings.NewReader(body))
			if token := tt.token(t, issuer); token != "" {
				req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestProjectHandler_GetAll(t *testing.T) {
	projects := []models.Project{
		{ID: 1, Title: "Graphery", Tech: []string{"React"}},
		{ID: 2, Title: "Tindog", Tech: []string{}},
	}
	router, _ := newProjectRouter(t, &mockProjectService{projects: projects})

	// Reads need no token
	req := httptest.NewRequest(http.MethodGet, "/project/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Graphery", got[0].Title)
}

func TestProjectHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, _ := newProjectRouter(t, &mockProjectService{project: &models.Project{ID: 1, Title: "Graphery"}})

		req := httptest.NewRequest(http.MethodGet, "/project/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, _ := newProjectRouter(t, &mockProjectService{err: models.ErrNotFound})

		req := httptest.NewRequest(http.MethodGet, "/project/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		router, _ := newProjectRouter(t, &mockProjectService{})

		req := httptest.NewRequest(http.MethodGet, "/project/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid id"}`, rec.Body.String())
	})
}

func TestProjectHandler_Delete(t *testing.T) {
	router, issuer := newProjectRouter(t, &mockProjectService{})
	token := issueToken(t, issuer, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodDelete, "/project/1", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Project deleted successfully"}`, rec.Body.String())
}

func TestProjectHandler_DeleteAll(t *testing.T) {
	router, issuer := newProjectRouter(t, &mockProjectService{deleted: 3})
	token := issueToken(t, issuer, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodDelete, "/project/", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["deleted"])
}
