package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/pkg/logger"
)

// Review error types
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = ErrNotFound
)

const reviewColumns = `id, scholarship_id, university_name, reviewer_email, reviewer_name,
	reviewer_photo, rating, comment, created_at`

// ReviewRepository persists scholarship reviews.
type ReviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateReview inserts a new review.
func (r *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) (int64, error) {
	sql, args, err := r.sb.Insert("reviews").
		Columns("scholarship_id", "university_name", "reviewer_email", "reviewer_name",
			"reviewer_photo", "rating", "comment", "created_at").
		Values(review.ScholarshipID, review.UniversityName, review.ReviewerEmail, review.ReviewerName,
			review.ReviewerPhoto, review.Rating, review.Comment, review.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create review query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Int64("scholarshipID", review.ScholarshipID).Msg("Error executing create review query")
		return 0, fmt.Errorf("error creating review: %w", err)
	}

	return id, nil
}

// ListReviews retrieves reviews, newest first. When scholarshipID is nil the
// full listing is returned.
func (r *ReviewRepository) ListReviews(ctx context.Context, scholarshipID *int64) ([]*models.Review, error) {
	builder := r.sb.Select(reviewColumns).
		From("reviews").
		OrderBy("created_at DESC")
	if scholarshipID != nil {
		builder = builder.Where(squirrel.Eq{"scholarship_id": *scholarshipID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reviews query")
		return nil, fmt.Errorf("error querying reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}
	for rows.Next() {
		review := &models.Review{}
		err := rows.Scan(
			&review.ID, &review.ScholarshipID, &review.UniversityName, &review.ReviewerEmail, &review.ReviewerName,
			&review.ReviewerPhoto, &review.Rating, &review.Comment, &review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}

// DeleteReview removes a review.
func (r *ReviewRepository) DeleteReview(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete review query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reviewID", id).Msg("Error executing delete review query")
		return fmt.Errorf("error deleting review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReviewNotFound
	}

	return nil
}
