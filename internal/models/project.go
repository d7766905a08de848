package models

import "time"

// Project represents a portfolio project entry
type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Role        string    `json:"role"`
	Outcome     string    `json:"outcome"`
	Tech        []string  `json:"tech"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectRequest represents a project create/update request body
type ProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Role        string   `json:"role"`
	Outcome     string   `json:"outcome"`
	Tech        []string `json:"tech"`
	Status      string   `json:"status"`
}
