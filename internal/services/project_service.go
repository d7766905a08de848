package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// ProjectRepository is the interface that wraps projects table data access
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int, error)
}

// projectService implements portfolio project business logic
type projectService struct {
	projectRepo ProjectRepository
	logger      *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo ProjectRepository, logger *zap.Logger) *projectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create validates and stores a new project
func (s *projectService) Create(ctx context.Context, req *models.ProjectRequest) (*models.Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrValidation)
	}

	project := &models.Project{
		Title:       title,
		Description: req.Description,
		Role:        req.Role,
		Outcome:     req.Outcome,
		Tech:        req.Tech,
		Status:      req.Status,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// GetAll retrieves all projects
func (s *projectService) GetAll(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

// GetByID retrieves a project by ID
func (s *projectService) GetByID(ctx context.Context, id int) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// Update applies an update to a project
func (s *projectService) Update(ctx context.Context, id int, req *models.ProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		project.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.Role != "" {
		project.Role = req.Role
	}
	if req.Outcome != "" {
		project.Outcome = req.Outcome
	}
	if req.Tech != nil {
		project.Tech = req.Tech
	}
	if req.Status != "" {
		project.Status = req.Status
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project by ID
func (s *projectService) Delete(ctx context.Context, id int) error {
	return s.projectRepo.Delete(ctx, id)
}

// DeleteAll removes every project and returns the number deleted
func (s *projectService) DeleteAll(ctx context.Context) (int, error) {
	return s.projectRepo.DeleteAll(ctx)
}
