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
	"github.com/scholarstream/scholarstream/internal/pkg/identity"
)

// ReviewRepository is the storage access the review service needs.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) (int64, error)
	ListReviews(ctx context.Context, scholarshipID *int64) ([]*models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// ReviewService defines the interface for review operations
type ReviewService interface {
	CreateReview(ctx context.Context, ident *identity.Identity, req dto.CreateReviewRequest) (int64, error)
	ListReviews(ctx context.Context, scholarshipID *int64) ([]*models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// reviewServiceImpl implements the ReviewService interface
type reviewServiceImpl struct {
	reviewRepo ReviewRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewRepo ReviewRepository) ReviewService {
	return &reviewServiceImpl{
		reviewRepo: reviewRepo,
	}
}

// CreateReview adds a review authored by the verified identity.
func (s *reviewServiceImpl) CreateReview(ctx context.Context, ident *identity.Identity, req dto.CreateReviewRequest) (int64, error) {
	if req.ScholarshipID <= 0 {
		return 0, fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}
	if req.Rating < 0 || req.Rating > 5 {
		return 0, fmt.Errorf("%w: rating must be between 0 and 5", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return 0, fmt.Errorf("%w: comment cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.reviewRepo.CreateReview(ctx, &models.Review{
		ScholarshipID:  req.ScholarshipID,
		UniversityName: req.UniversityName,
		ReviewerEmail:  ident.Email,
		ReviewerName:   ident.DisplayName,
		Rating:         req.Rating,
		Comment:        req.Comment,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		return 0, fmt.Errorf("error creating review: %w", err)
	}
	return id, nil
}

// ListReviews retrieves reviews, optionally restricted to one scholarship.
func (s *reviewServiceImpl) ListReviews(ctx context.Context, scholarshipID *int64) ([]*models.Review, error) {
	reviews, err := s.reviewRepo.ListReviews(ctx, scholarshipID)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	return reviews, nil
}

// DeleteReview removes a review. Only called from moderator-gated routes.
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid review ID", apperrors.ErrValidationFailed)
	}

	err := s.reviewRepo.DeleteReview(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return fmt.Errorf("error deleting review: %w", err)
	}
	return nil
}
