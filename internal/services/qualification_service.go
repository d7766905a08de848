package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// QualificationRepository is the interface that wraps qualifications table data access
type QualificationRepository interface {
	Create(ctx context.Context, q *models.Qualification) error
	GetAll(ctx context.Context) ([]models.Qualification, error)
	GetByID(ctx context.Context, id int) (*models.Qualification, error)
	Update(ctx context.Context, q *models.Qualification) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int, error)
}

// qualificationService implements qualification business logic
type qualificationService struct {
	qualificationRepo QualificationRepository
	logger            *zap.Logger
}

// NewQualificationService creates a new qualification service
func NewQualificationService(qualificationRepo QualificationRepository, logger *zap.Logger) *qualificationService {
	return &qualificationService{
		qualificationRepo: qualificationRepo,
		logger:            logger,
	}
}

// Create validates and stores a new qualification
func (s *qualificationService) Create(ctx context.Context, req *models.QualificationRequest) (*models.Qualification, error) {
	title := strings.TrimSpace(req.Title)
	firstname := strings.TrimSpace(req.Firstname)
	lastname := strings.TrimSpace(req.Lastname)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if title == "" || firstname == "" || lastname == "" || email == "" {
		return nil, fmt.Errorf("%w: missing required fields: title, firstname, lastname, email", models.ErrValidation)
	}

	q := &models.Qualification{
		Title:       title,
		Firstname:   firstname,
		Lastname:    lastname,
		Email:       email,
		Completion:  req.Completion,
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.qualificationRepo.Create(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

// GetAll retrieves all qualifications
func (s *qualificationService) GetAll(ctx context.Context) ([]models.Qualification, error) {
	return s.qualificationRepo.GetAll(ctx)
}

// GetByID retrieves a qualification by ID
func (s *qualificationService) GetByID(ctx context.Context, id int) (*models.Qualification, error) {
	return s.qualificationRepo.GetByID(ctx, id)
}

// Update applies an update to a qualification
func (s *qualificationService) Update(ctx context.Context, id int, req *models.QualificationRequest) (*models.Qualification, error) {
	q, err := s.qualificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		q.Title = strings.TrimSpace(req.Title)
	}
	if req.Firstname != "" {
		q.Firstname = strings.TrimSpace(req.Firstname)
	}
	if req.Lastname != "" {
		q.Lastname = strings.TrimSpace(req.Lastname)
	}
	if req.Email != "" {
		q.Email = strings.TrimSpace(strings.ToLower(req.Email))
	}
	if req.Completion != nil {
		q.Completion = req.Completion
	}
	if req.Description != "" {
		q.Description = strings.TrimSpace(req.Description)
	}

	if err := s.qualificationRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

// Delete removes a qualification by ID
func (s *qualificationService) Delete(ctx context.Context, id int) error {
	return s.qualificationRepo.Delete(ctx, id)
}

// DeleteAll removes every qualification and returns the number deleted
func (s *qualificationService) DeleteAll(ctx context.Context) (int, error) {
	return s.qualificationRepo.DeleteAll(ctx)
}
