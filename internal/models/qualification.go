package models

import "time"

// Qualification represents an education or certification entry
type Qualification struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Firstname   string     `json:"firstname"`
	Lastname    string     `json:"lastname"`
	Email       string     `json:"email"`
	Completion  *time.Time `json:"completion"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// QualificationRequest represents a qualification create/update request body
type QualificationRequest struct {
	Title       string     `json:"title"`
	Firstname   string     `json:"firstname"`
	Lastname    string     `json:"lastname"`
	Email       string     `json:"email"`
	Completion  *time.Time `json:"completion"`
	Description string     `json:"description"`
}
