package models

import "errors"

// Sentinel errors shared across repositories and services. Handlers map these
// to HTTP status codes with errors.Is.
var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateIdentity is returned when a sign-up reuses an existing username or email
	ErrDuplicateIdentity = errors.New("email or username already in use")
	// ErrInvalidCredential is returned when a password comparison fails
	ErrInvalidCredential = errors.New("invalid password")
	// ErrValidation is returned when request input is missing or malformed
	ErrValidation = errors.New("invalid input")
)
