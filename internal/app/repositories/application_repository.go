package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/pkg/dberrors"
	"github.com/scholarstream/scholarstream/internal/pkg/logger"
)

// Application error types
var (
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = ErrNotFound
)

// applicationUniqueConstraint enforces the at-most-one-application invariant
// per (scholarship, user email) pair at the storage layer.
const applicationUniqueConstraint = "applications_scholarship_user_key"

const applicationColumns = `id, scholarship_id, user_email, scholarship_name, university_name,
	payment_status, application_status, transaction_id, amount_paid, feedback,
	created_at, completed_at`

// ApplicationRepository persists payment applications.
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	a := &models.Application{}
	err := row.Scan(
		&a.ID, &a.ScholarshipID, &a.UserEmail, &a.ScholarshipName, &a.UniversityName,
		&a.PaymentStatus, &a.ApplicationStatus, &a.TransactionID, &a.AmountPaid, &a.Feedback,
		&a.CreatedAt, &a.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ApplicationRepository) queryApplications(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Application, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build application query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing application query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	applications := []*models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}

// InsertPending inserts a new pending application. The unique constraint on
// (scholarship_id, user_email) makes this an atomic insert-if-absent: when
// the pair already has an application, the existing identifier is returned
// with created=false instead of a racy check-then-insert.
func (r *ApplicationRepository) InsertPending(ctx context.Context, a *models.Application) (id int64, created bool, err error) {
	sql, args, err := r.sb.Insert("applications").
		Columns("scholarship_id", "user_email", "scholarship_name", "university_name",
			"payment_status", "application_status", "created_at").
		Values(a.ScholarshipID, a.UserEmail, a.ScholarshipName, a.UniversityName,
			a.PaymentStatus, a.ApplicationStatus, a.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("failed to build insert application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err == nil {
		return id, true, nil
	}

	if !dberrors.IsDuplicateConstraintError(err, applicationUniqueConstraint) {
		logger.Error().Err(err).Int64("scholarshipID", a.ScholarshipID).Str("email", a.UserEmail).Msg("Error executing insert application query")
		return 0, false, fmt.Errorf("error inserting application: %w", err)
	}

	existing, err := r.GetByScholarshipAndEmail(ctx, a.ScholarshipID, a.UserEmail)
	if err != nil {
		return 0, false, fmt.Errorf("error resolving existing application: %w", err)
	}

	return existing.ID, false, nil
}

// GetByScholarshipAndEmail retrieves the application for a (scholarship, user) pair.
func (r *ApplicationRepository) GetByScholarshipAndEmail(ctx context.Context, scholarshipID int64, email string) (*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns).
		From("applications").
		Where(squirrel.Eq{"scholarship_id": scholarshipID, "user_email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	a, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("scholarshipID", scholarshipID).Str("email", email).Msg("Error scanning application row")
		return nil, fmt.Errorf("error getting application: %w", err)
	}

	return a, nil
}

// RecordPayment overwrites the payment outcome on the application for the
// given (scholarship, user) pair and marks it submitted. A field-level
// overwrite, so replaying the same reconciliation is harmless.
func (r *ApplicationRepository) RecordPayment(ctx context.Context, scholarshipID int64, email string, record models.PaymentRecord) error {
	sql, args, err := r.sb.Update("applications").
		Set("payment_status", record.PaymentStatus).
		Set("application_status", models.ApplicationSubmitted).
		Set("transaction_id", record.TransactionID).
		Set("amount_paid", record.AmountPaid).
		Set("completed_at", record.CompletedAt).
		Where(squirrel.Eq{"scholarship_id": scholarshipID, "user_email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build record payment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scholarshipID", scholarshipID).Str("email", email).Msg("Error executing record payment query")
		return fmt.Errorf("error recording payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// ListByEmail retrieves a user's applications, newest first.
func (r *ApplicationRepository) ListByEmail(ctx context.Context, email string) ([]*models.Application, error) {
	builder := r.sb.Select(applicationColumns).
		From("applications").
		Where(squirrel.Eq{"user_email": email}).
		OrderBy("created_at DESC")

	return r.queryApplications(ctx, builder)
}

// ListPaid retrieves every paid application, newest completion first.
func (r *ApplicationRepository) ListPaid(ctx context.Context) ([]*models.Application, error) {
	builder := r.sb.Select(applicationColumns).
		From("applications").
		Where(squirrel.Eq{"payment_status": models.PaymentPaid}).
		OrderBy("completed_at DESC")

	return r.queryApplications(ctx, builder)
}

// ListFeedbackByEmail retrieves a user's applications that carry feedback.
func (r *ApplicationRepository) ListFeedbackByEmail(ctx context.Context, email string) ([]*models.Application, error) {
	builder := r.sb.Select(applicationColumns).
		From("applications").
		Where(squirrel.Eq{"user_email": email}).
		Where("feedback IS NOT NULL").
		OrderBy("completed_at DESC")

	return r.queryApplications(ctx, builder)
}

// SetFeedback attaches moderator feedback to an application.
func (r *ApplicationRepository) SetFeedback(ctx context.Context, id int64, feedback string) error {
	sql, args, err := r.sb.Update("applications").
		Set("feedback", feedback).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set feedback query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing set feedback query")
		return fmt.Errorf("error setting feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// DeletePending removes the caller's application for a scholarship, but only
// while it is still pending. Submitted applications are not deletable, and
// the condition is part of the statement so there is no read-then-delete gap.
func (r *ApplicationRepository) DeletePending(ctx context.Context, scholarshipID int64, email string) error {
	sql, args, err := r.sb.Delete("applications").
		Where(squirrel.Eq{
			"scholarship_id":     scholarshipID,
			"user_email":         email,
			"application_status": models.ApplicationPending,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete application query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scholarshipID", scholarshipID).Str("email", email).Msg("Error executing delete application query")
		return fmt.Errorf("error deleting application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}

	return nil
}
