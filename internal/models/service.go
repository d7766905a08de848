package models

import "time"

// Service represents a service offered on the portfolio site
type Service struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	FullDesc  string    `json:"fullDesc"`
	Img       string    `json:"img"`
	Features  []string  `json:"features"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceRequest represents a service create/update request body
type ServiceRequest struct {
	Title    string   `json:"title"`
	Desc     string   `json:"desc"`
	FullDesc string   `json:"fullDesc"`
	Img      string   `json:"img"`
	Features []string `json:"features"`
}
