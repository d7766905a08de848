package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/portfoliosite/backend/internal/auth"
	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the adaptive hash cost factor for stored passwords
const bcryptCost = 10

// UserRepository is the interface that wraps methods for users table data access
type UserRepository interface {
	// Create inserts a new user. A username or email collision returns
	// models.ErrDuplicateIdentity.
	Create(ctx context.Context, user *models.User) error
	// GetByUsernameOrEmail retrieves a user whose username or email matches
	// the given login; username matches take precedence. Returns
	// models.ErrNotFound if nothing matches.
	GetByUsernameOrEmail(ctx context.Context, login string) (*models.User, error)
	// GetByID retrieves a user by ID. Returns models.ErrNotFound if the user
	// does not exist.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// ExistsByUsernameOrEmail reports whether any user already holds the
	// given username or email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// authService implements the sign-up / sign-in / profile flows
type authService struct {
	userRepo    UserRepository
	tokenIssuer *auth.TokenIssuer
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenIssuer *auth.TokenIssuer, logger *zap.Logger) *authService {
	return &authService{
		userRepo:    userRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SignUp creates a new user account and issues a session token. The requested
// role is parsed with models.ParseRole, so anything outside admin/enduser
// silently becomes enduser.
func (s *authService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.User, string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if username == "" || email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: all fields are required", models.ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return nil, "", fmt.Errorf("%w: invalid email format", models.ErrValidation)
	}

	// One combined existence check covers both uniqueness rules
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", models.ErrDuplicateIdentity
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		Name:         username, // display name defaults to the username
		PasswordHash: string(passwordHash),
		Role:         models.ParseRole(req.Role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokenIssuer.Issue(user)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err), zap.Int("user_id", user.ID))
		return nil, "", err
	}

	return user, token, nil
}

// SignIn authenticates a user by username or email and issues a session token
func (s *authService) SignIn(ctx context.Context, req *models.SignInRequest) (*models.User, string, error) {
	login := strings.TrimSpace(req.Username)
	if login == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", models.ErrValidation)
	}

	user, err := s.userRepo.GetByUsernameOrEmail(ctx, login)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", models.ErrInvalidCredential
	}

	token, err := s.tokenIssuer.Issue(user)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err), zap.Int("user_id", user.ID))
		return nil, "", err
	}

	return user, token, nil
}

// Profile loads the user record behind a verified token
func (s *authService) Profile(ctx context.Context, userID int) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
