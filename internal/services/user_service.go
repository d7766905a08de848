package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// UserAdminRepository is the interface that wraps user management data access
type UserAdminRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, userID int) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID int) error
}

// userService implements admin user management
type userService struct {
	userRepo UserAdminRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo UserAdminRepository, logger *zap.Logger) *userService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetAll retrieves all users
func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(ctx context.Context, userID int) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Update applies a partial update to a user. A role value outside the known
// set is coerced to enduser, same as at sign-up.
func (s *userService) Update(ctx context.Context, userID int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", models.ErrValidation)
		}
		user.Username = username
	}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if !emailRegex.MatchString(email) {
			return nil, fmt.Errorf("%w: invalid email format", models.ErrValidation)
		}
		user.Email = email
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		user.Role = models.ParseRole(*req.Role)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user by ID
func (s *userService) Delete(ctx context.Context, userID int) error {
	return s.userRepo.Delete(ctx, userID)
}
