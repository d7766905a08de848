package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// defaultServiceImg is used when a service is created without an image
const defaultServiceImg = "/images/img1.png"

// ServiceRepository is the interface that wraps services table data access
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetAll(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id int) (*models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int, error)
}

// serviceService implements offered-service business logic
type serviceService struct {
	serviceRepo ServiceRepository
	logger      *zap.Logger
}

// NewServiceService creates a new service service
func NewServiceService(serviceRepo ServiceRepository, logger *zap.Logger) *serviceService {
	return &serviceService{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create validates and stores a new service
func (s *serviceService) Create(ctx context.Context, req *models.ServiceRequest) (*models.Service, error) {
	title := strings.TrimSpace(req.Title)
	desc := strings.TrimSpace(req.Desc)
	fullDesc := strings.TrimSpace(req.FullDesc)

	if title == "" || desc == "" || fullDesc == "" {
		return nil, fmt.Errorf("%w: title, desc and fullDesc are required", models.ErrValidation)
	}

	img := req.Img
	if img == "" {
		img = defaultServiceImg
	}

	service := &models.Service{
		Title:    title,
		Desc:     desc,
		FullDesc: fullDesc,
		Img:      img,
		Features: req.Features,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

// GetAll retrieves all services
func (s *serviceService) GetAll(ctx context.Context) ([]models.Service, error) {
	return s.serviceRepo.GetAll(ctx)
}

// GetByID retrieves a service by ID
func (s *serviceService) GetByID(ctx context.Context, id int) (*models.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

// Update applies an update to a service
func (s *serviceService) Update(ctx context.Context, id int, req *models.ServiceRequest) (*models.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		service.Title = strings.TrimSpace(req.Title)
	}
	if req.Desc != "" {
		service.Desc = strings.TrimSpace(req.Desc)
	}
	if req.FullDesc != "" {
		service.FullDesc = strings.TrimSpace(req.FullDesc)
	}
	if req.Img != "" {
		service.Img = req.Img
	}
	if req.Features != nil {
		service.Features = req.Features
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

// Delete removes a service by ID
func (s *serviceService) Delete(ctx context.Context, id int) error {
	return s.serviceRepo.Delete(ctx, id)
}

// DeleteAll removes every service and returns the number deleted
func (s *serviceService) DeleteAll(ctx context.Context) (int, error) {
	return s.serviceRepo.DeleteAll(ctx)
}
