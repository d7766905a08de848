package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// ContactRepository is the interface that wraps contacts table data access
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id int) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int, error)
}

// contactService implements contact form business logic
type contactService struct {
	contactRepo ContactRepository
	logger      *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(contactRepo ContactRepository, logger *zap.Logger) *contactService {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Create validates and stores a contact form submission
func (s *contactService) Create(ctx context.Context, req *models.ContactRequest) (*models.Contact, error) {
	firstname := strings.TrimSpace(req.Firstname)
	lastname := strings.TrimSpace(req.Lastname)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	body := strings.TrimSpace(req.Body)

	if firstname == "" || lastname == "" || email == "" || body == "" {
		return nil, fmt.Errorf("%w: missing required fields", models.ErrValidation)
	}

	contact := &models.Contact{
		Firstname: firstname,
		Lastname:  lastname,
		Email:     email,
		Subject:   strings.TrimSpace(req.Subject),
		Body:      body,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// GetAll retrieves all contacts
func (s *contactService) GetAll(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepo.GetAll(ctx)
}

// GetByID retrieves a contact by ID
func (s *contactService) GetByID(ctx context.Context, id int) (*models.Contact, error) {
	return s.contactRepo.GetByID(ctx, id)
}

// Update validates and applies a contact update
func (s *contactService) Update(ctx context.Context, id int, req *models.ContactRequest) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Firstname != "" {
		contact.Firstname = strings.TrimSpace(req.Firstname)
	}
	if req.Lastname != "" {
		contact.Lastname = strings.TrimSpace(req.Lastname)
	}
	if req.Email != "" {
		contact.Email = strings.TrimSpace(strings.ToLower(req.Email))
	}
	if req.Subject != "" {
		contact.Subject = strings.TrimSpace(req.Subject)
	}
	if req.Body != "" {
		contact.Body = strings.TrimSpace(req.Body)
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// Delete removes a contact by ID
func (s *contactService) Delete(ctx context.Context, id int) error {
	return s.contactRepo.Delete(ctx, id)
}

// DeleteAll removes every contact and returns the number deleted
func (s *contactService) DeleteAll(ctx context.Context) (int, error) {
	return s.contactRepo.DeleteAll(ctx)
}
