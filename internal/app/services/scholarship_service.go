package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/repositories"
	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
	"github.com/scholarstream/scholarstream/internal/pkg/helpers"
)

// sortFields maps the API's sort keys onto storage columns. Any key outside
// this set is rejected before it gets near SQL.
var sortFields = map[string]string{
	"scholarshipCategory": "scholarship_category",
	"universityWorldRank": "university_world_rank",
	"degree":              "degree",
	"tuitionFees":         "tuition_fees",
}

// ScholarshipRepository is the catalog access the scholarship service needs.
type ScholarshipRepository interface {
	CreateScholarship(ctx context.Context, s *models.Scholarship) (int64, error)
	GetScholarshipByID(ctx context.Context, id int64) (*models.Scholarship, error)
	ListScholarships(ctx context.Context, offset uint64, limit int) ([]*models.Scholarship, error)
	CountScholarships(ctx context.Context) (int64, error)
	ListScholarshipsSorted(ctx context.Context, column string) ([]*models.Scholarship, error)
	SearchScholarships(ctx context.Context, query string) ([]*models.Scholarship, error)
	UpdateScholarship(ctx context.Context, id int64, update *models.ScholarshipUpdate) error
	DeleteScholarship(ctx context.Context, id int64) error
}

// ScholarshipService defines the interface for catalog operations
type ScholarshipService interface {
	CreateScholarship(ctx context.Context, s *models.Scholarship) (int64, error)
	GetScholarshipByID(ctx context.Context, id int64) (*models.Scholarship, error)
	ListScholarships(ctx context.Context, page, limit int) (*dto.ScholarshipListResponse, error)
	ListScholarshipsSorted(ctx context.Context, sortKey string) ([]*models.Scholarship, error)
	SearchScholarships(ctx context.Context, query string) ([]*models.Scholarship, error)
	UpdateScholarship(ctx context.Context, id int64, update *models.ScholarshipUpdate) error
	DeleteScholarship(ctx context.Context, id int64) error
}

// scholarshipServiceImpl implements the ScholarshipService interface
type scholarshipServiceImpl struct {
	scholarshipRepo ScholarshipRepository
}

// NewScholarshipService creates a new scholarship service instance
func NewScholarshipService(scholarshipRepo ScholarshipRepository) ScholarshipService {
	return &scholarshipServiceImpl{
		scholarshipRepo: scholarshipRepo,
	}
}

// validateScholarship validates posting data before database operations
func (s *scholarshipServiceImpl) validateScholarship(scholarship *models.Scholarship) error {
	if scholarship == nil {
		return fmt.Errorf("%w: scholarship is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(scholarship.ScholarshipName) == "" {
		return fmt.Errorf("%w: scholarshipName cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(scholarship.UniversityName) == "" {
		return fmt.Errorf("%w: universityName cannot be empty", apperrors.ErrValidationFailed)
	}
	if scholarship.TuitionFees < 0 || scholarship.ApplicationFees < 0 || scholarship.ServiceCharge < 0 {
		return fmt.Errorf("%w: fees cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateScholarship creates a new posting with both post dates set to now.
func (s *scholarshipServiceImpl) CreateScholarship(ctx context.Context, scholarship *models.Scholarship) (int64, error) {
	if err := s.validateScholarship(scholarship); err != nil {
		return 0, err
	}

	now := time.Now()
	scholarship.ScholarshipPostDate = now
	scholarship.ScholarshipPostUpdateDate = now

	id, err := s.scholarshipRepo.CreateScholarship(ctx, scholarship)
	if err != nil {
		return 0, fmt.Errorf("error creating scholarship: %w", err)
	}
	return id, nil
}

// GetScholarshipByID retrieves a posting by ID.
func (s *scholarshipServiceImpl) GetScholarshipByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}

	scholarship, err := s.scholarshipRepo.GetScholarshipByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrScholarshipNotFound
		}
		return nil, fmt.Errorf("error retrieving scholarship: %w", err)
	}
	return scholarship, nil
}

// ListScholarships retrieves a page of postings, most recently updated first.
func (s *scholarshipServiceImpl) ListScholarships(ctx context.Context, page, limit int) (*dto.ScholarshipListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	scholarships, err := s.scholarshipRepo.ListScholarships(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing scholarships: %w", err)
	}

	total, err := s.scholarshipRepo.CountScholarships(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting scholarships: %w", err)
	}

	return &dto.ScholarshipListResponse{
		Data:       scholarships,
		Total:      total,
		Page:       page,
		TotalPages: helpers.TotalPages(total, limit),
	}, nil
}

// ListScholarshipsSorted retrieves all postings ordered by an allowlisted
// sort key.
func (s *scholarshipServiceImpl) ListScholarshipsSorted(ctx context.Context, sortKey string) ([]*models.Scholarship, error) {
	column, ok := sortFields[sortKey]
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unsupported sort field %q", sortKey))
	}

	scholarships, err := s.scholarshipRepo.ListScholarshipsSorted(ctx, column)
	if err != nil {
		return nil, fmt.Errorf("error listing sorted scholarships: %w", err)
	}
	return scholarships, nil
}

// SearchScholarships retrieves postings matching a case-insensitive
// substring query.
func (s *scholarshipServiceImpl) SearchScholarships(ctx context.Context, query string) ([]*models.Scholarship, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewBadRequestError("Query is required")
	}

	scholarships, err := s.scholarshipRepo.SearchScholarships(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error searching scholarships: %w", err)
	}
	return scholarships, nil
}

// UpdateScholarship applies a partial update to a posting.
func (s *scholarshipServiceImpl) UpdateScholarship(ctx context.Context, id int64, update *models.ScholarshipUpdate) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}
	if update == nil {
		return fmt.Errorf("%w: update is nil", apperrors.ErrValidationFailed)
	}

	err := s.scholarshipRepo.UpdateScholarship(ctx, id, update)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrScholarshipNotFound
		}
		return fmt.Errorf("error updating scholarship: %w", err)
	}
	return nil
}

// DeleteScholarship deletes a posting by ID.
func (s *scholarshipServiceImpl) DeleteScholarship(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}

	err := s.scholarshipRepo.DeleteScholarship(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrScholarshipNotFound
		}
		return fmt.Errorf("error deleting scholarship: %w", err)
	}
	return nil
}
