package models

import "time"

// Role is the user authorization role
type Role string

// Role values. There is no hierarchy beyond these two flat roles.
const (
	RoleAdmin   Role = "admin"
	RoleEndUser Role = "enduser"
)

// ParseRole maps a raw role string to a Role. Any unrecognized value is
// coerced to RoleEndUser rather than rejected, so a client can never inject
// a privileged role through the sign-up payload.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin
	case RoleEndUser:
		return RoleEndUser
	default:
		return RoleEndUser
	}
}

// User represents a user identity record
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SignUpRequest represents a sign-up request body
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// SignInRequest represents a sign-in request body. Username holds either a
// username or an email address.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest represents an admin user update request body
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
}
