package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		switch {
		case req["username"] == "alice" && req["password"] == "secret1":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "tok123", Path: "/"})
			json.NewEncoder(w).Encode(map[string]any{
				"message": "Signin successful",
				"token":   "tok123",
				"user":    User{ID: 1, Username: "alice", Name: "alice", Email: "a@x.com", Role: "admin"},
			})
		case req["username"] == "alice":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid password"})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "record not found"})
		}
	})
	mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Profile loaded",
			"user":    User{ID: 1, Username: "alice", Name: "alice", Email: "a@x.com", Role: "admin"},
		})
	})
	mux.HandleFunc("GET /auth/signout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Signed out successfully"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_SignIn(t *testing.T) {
	server := newAuthServer(t)

	t.Run("success populates the auth context", func(t *testing.T) {
		store := NewMemoryStore()
		c, err := New(server.URL, store)
		require.NoError(t, err)

		user, err := c.SignIn(context.Background(), "alice", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		assert.True(t, c.Auth().IsAuthenticated())
		assert.True(t, c.Auth().IsAdmin())

		token, ok := store.Get("authToken")
		require.True(t, ok)
		assert.Equal(t, "tok123", token)
	})

	t.Run("wrong password surfaces as APIError", func(t *testing.T) {
		c, err := New(server.URL, NewMemoryStore())
		require.NoError(t, err)

		_, err = c.SignIn(context.Background(), "alice", "wrong")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "invalid password", apiErr.Message)
		assert.False(t, c.Auth().IsAuthenticated())
	})

	t.Run("unknown user surfaces as 404 APIError", func(t *testing.T) {
		c, err := New(server.URL, NewMemoryStore())
		require.NoError(t, err)

		_, err = c.SignIn(context.Background(), "nobody", "secret1")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
	})

	t.Run("unreachable server is a plain error", func(t *testing.T) {
		c, err := New("http://127.0.0.1:1", NewMemoryStore())
		require.NoError(t, err)

		_, err = c.SignIn(context.Background(), "alice", "secret1")
		require.Error(t, err)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestClient_Profile(t *testing.T) {
	server := newAuthServer(t)

	t.Run("stored token rides the bearer header", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set("authToken", "tok123"))

		c, err := New(server.URL, store)
		require.NoError(t, err)

		user, err := c.Profile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("no token means 401", func(t *testing.T) {
		c, err := New(server.URL, NewMemoryStore())
		require.NoError(t, err)

		_, err = c.Profile(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	})
}

func TestClient_SignOut(t *testing.T) {
	server := newAuthServer(t)
	store := NewMemoryStore()

	c, err := New(server.URL, store)
	require.NoError(t, err)

	_, err = c.SignIn(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.True(t, c.Auth().IsAuthenticated())

	require.NoError(t, c.SignOut(context.Background()))

	assert.False(t, c.Auth().IsAuthenticated())
	_, hasToken := store.Get("authToken")
	assert.False(t, hasToken)
}
