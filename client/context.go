// Package client provides the Go client for the portfolio API, including the
// auth context that mirrors the session state for UI decisions. The context
// is a plain dependency-injected object constructed once at application start
// and passed to whatever needs it; there is no package-level singleton. It
// enforces nothing: real authorization happens server-side.
package client

import (
	"encoding/json"
	"sync"
)

// Role values mirrored from the server
const (
	RoleAdmin   = "admin"
	RoleEndUser = "enduser"
)

// Storage keys, matching what the web client keeps in localStorage
const (
	storageKeyUser  = "user"
	storageKeyToken = "authToken"
	storageKeyRole  = "userRole"
)

// User is the client-side view of a user record
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthContext holds the current user and role for UI gating. It has two
// states: unauthenticated (no user, no role) and authenticated (both set).
type AuthContext struct {
	mu    sync.RWMutex
	store Storage
	user  *User
	role  string
}

// NewAuthContext creates an auth context rehydrated from the given storage.
// State is restored only when both a stored user and a stored token are
// present; a user object that fails to parse is discarded together with the
// token and the context starts unauthenticated.
func NewAuthContext(store Storage) *AuthContext {
	ac := &AuthContext{store: store}

	storedUser, hasUser := store.Get(storageKeyUser)
	_, hasToken := store.Get(storageKeyToken)
	if !hasUser || !hasToken {
		return ac
	}

	var user User
	if err := json.Unmarshal([]byte(storedUser), &user); err != nil {
		// Fail soft: corrupt state is cleared, never fatal
		store.Delete(storageKeyUser)
		store.Delete(storageKeyToken)
		store.Delete(storageKeyRole)
		return ac
	}

	role := user.Role
	if role == "" {
		role = RoleEndUser
	}

	ac.user = &user
	ac.role = role
	return ac
}

// Login records an authenticated user and persists it to storage
func (ac *AuthContext) Login(user User, role string) error {
	if role == "" {
		role = RoleEndUser
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := ac.store.Set(storageKeyUser, string(raw)); err != nil {
		return err
	}
	if err := ac.store.Set(storageKeyRole, role); err != nil {
		return err
	}

	ac.mu.Lock()
	ac.user = &user
	ac.role = role
	ac.mu.Unlock()
	return nil
}

// Logout clears the in-memory state and the persisted storage. It does not
// contact the server: issued tokens stay valid until they expire.
func (ac *AuthContext) Logout() {
	ac.store.Delete(storageKeyUser)
	ac.store.Delete(storageKeyToken)
	ac.store.Delete(storageKeyRole)

	ac.mu.Lock()
	ac.user = nil
	ac.role = ""
	ac.mu.Unlock()
}

// User returns the current user, if authenticated
func (ac *AuthContext) User() (User, bool) {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	if ac.user == nil {
		return User{}, false
	}
	return *ac.user, true
}

// Role returns the current role, or empty when unauthenticated
func (ac *AuthContext) Role() string {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return ac.role
}

// IsAuthenticated reports whether both a user and a role are present
func (ac *AuthContext) IsAuthenticated() bool {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return ac.user != nil && ac.role != ""
}

// IsAdmin reports whether the current role is admin
func (ac *AuthContext) IsAdmin() bool {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return ac.role == RoleAdmin
}

// IsEndUser reports whether the current role is enduser
func (ac *AuthContext) IsEndUser() bool {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return ac.role == RoleEndUser
}

// setToken persists the session token alongside the user
func (ac *AuthContext) setToken(token string) error {
	return ac.store.Set(storageKeyToken, token)
}
