package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/repositories"
	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
	"github.com/scholarstream/scholarstream/internal/pkg/helpers"
	"github.com/scholarstream/scholarstream/internal/pkg/identity"
)

// UserRepository is the role-store access the user service needs.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, offset uint64, limit int) ([]*models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUserRole(ctx context.Context, id int64, role models.Role) error
}

// UserService defines the interface for user and role operations
type UserService interface {
	Register(ctx context.Context, ident *identity.Identity, photoURL *string) (created bool, err error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error)
	UpdateUserRole(ctx context.Context, id int64, role string) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates the role record for a verified identity on first
// registration. Every account starts as a student; an existing email is the
// idempotent case, not an error.
func (s *userServiceImpl) Register(ctx context.Context, ident *identity.Identity, photoURL *string) (bool, error) {
	user := &models.User{
		Email:       ident.Email,
		DisplayName: ident.DisplayName,
		PhotoURL:    photoURL,
		Role:        models.RoleStudent,
		CreatedAt:   time.Now(),
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error registering user: %w", err)
	}

	s.logger.Info().Int64("userID", id).Str("email", ident.Email).Msg("User registered")
	return true, nil
}

// GetUserByEmail retrieves a user with its role by email.
func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// ListUsers retrieves a page of registered users.
func (s *userServiceImpl) ListUsers(ctx context.Context, page, limit int) (*dto.UserListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	users, err := s.userRepo.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	total, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	return &dto.UserListResponse{
		Data:       users,
		Total:      total,
		Page:       page,
		TotalPages: helpers.TotalPages(total, limit),
	}, nil
}

// UpdateUserRole sets a user's role. Only called from admin-gated routes.
func (s *userServiceImpl) UpdateUserRole(ctx context.Context, id int64, role string) error {
	newRole := models.Role(role)
	if !newRole.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, role)
	}
	if id <= 0 {
		return fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	err := s.userRepo.UpdateUserRole(ctx, id, newRole)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating user role: %w", err)
	}

	s.logger.Info().Int64("userID", id).Str("role", role).Msg("User role updated")
	return nil
}
