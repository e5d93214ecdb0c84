package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/pkg/logger"
)

// Scholarship error types
var (
	// ErrScholarshipNotFound is returned when a scholarship is not found.
	ErrScholarshipNotFound = ErrNotFound
)

const scholarshipColumns = `id, scholarship_name, university_name, university_country, university_city,
	university_world_rank, subject_category, scholarship_category, degree,
	tuition_fees, application_fees, service_charge, application_deadline,
	scholarship_post_date, scholarship_post_update_date, posted_by_email`

// searchColumns is the fixed set of text fields substring search runs over.
var searchColumns = []string{
	"scholarship_name",
	"university_name",
	"university_country",
	"university_city",
	"degree",
}

// ScholarshipRepository persists scholarship postings.
type ScholarshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScholarshipRepository creates a new ScholarshipRepository
func NewScholarshipRepository(db *pgxpool.Pool) *ScholarshipRepository {
	return &ScholarshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanScholarship(row pgx.Row) (*models.Scholarship, error) {
	s := &models.Scholarship{}
	err := row.Scan(
		&s.ID, &s.ScholarshipName, &s.UniversityName, &s.UniversityCountry, &s.UniversityCity,
		&s.UniversityWorldRank, &s.SubjectCategory, &s.ScholarshipCategory, &s.Degree,
		&s.TuitionFees, &s.ApplicationFees, &s.ServiceCharge, &s.ApplicationDeadline,
		&s.ScholarshipPostDate, &s.ScholarshipPostUpdateDate, &s.PostedByEmail,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ScholarshipRepository) queryScholarships(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Scholarship, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build scholarship query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing scholarship query")
		return nil, fmt.Errorf("error querying scholarships: %w", err)
	}
	defer rows.Close()

	scholarships := []*models.Scholarship{}
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning scholarship row: %w", err)
		}
		scholarships = append(scholarships, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scholarship rows: %w", err)
	}

	return scholarships, nil
}

// CreateScholarship inserts a new posting.
func (r *ScholarshipRepository) CreateScholarship(ctx context.Context, s *models.Scholarship) (int64, error) {
	sql, args, err := r.sb.Insert("scholarships").
		Columns("scholarship_name", "university_name", "university_country", "university_city",
			"university_world_rank", "subject_category", "scholarship_category", "degree",
			"tuition_fees", "application_fees", "service_charge", "application_deadline",
			"scholarship_post_date", "scholarship_post_update_date", "posted_by_email").
		Values(s.ScholarshipName, s.UniversityName, s.UniversityCountry, s.UniversityCity,
			s.UniversityWorldRank, s.SubjectCategory, s.ScholarshipCategory, s.Degree,
			s.TuitionFees, s.ApplicationFees, s.ServiceCharge, s.ApplicationDeadline,
			s.ScholarshipPostDate, s.ScholarshipPostUpdateDate, s.PostedByEmail).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create scholarship query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("scholarship", s.ScholarshipName).Msg("Error executing create scholarship query")
		return 0, fmt.Errorf("error creating scholarship: %w", err)
	}

	return id, nil
}

// GetScholarshipByID retrieves a single posting.
func (r *ScholarshipRepository) GetScholarshipByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	sql, args, err := r.sb.Select(scholarshipColumns).
		From("scholarships").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get scholarship query: %w", err)
	}

	s, err := scanScholarship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScholarshipNotFound
		}
		logger.Error().Err(err).Int64("scholarshipID", id).Msg("Error scanning scholarship row")
		return nil, fmt.Errorf("error getting scholarship by ID: %w", err)
	}

	return s, nil
}

// ListScholarships retrieves a page of postings, most recently updated first.
func (r *ScholarshipRepository) ListScholarships(ctx context.Context, offset uint64, limit int) ([]*models.Scholarship, error) {
	builder := r.sb.Select(scholarshipColumns).
		From("scholarships").
		OrderBy("scholarship_post_update_date DESC").
		Offset(offset).
		Limit(uint64(limit))

	return r.queryScholarships(ctx, builder)
}

// CountScholarships returns the total number of postings.
func (r *ScholarshipRepository) CountScholarships(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM scholarships").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting scholarships: %w", err)
	}
	return count, nil
}

// ListScholarshipsSorted retrieves all postings ordered ascending by the
// given column. Callers are responsible for restricting the column to the
// sort allowlist before it reaches SQL.
func (r *ScholarshipRepository) ListScholarshipsSorted(ctx context.Context, column string) ([]*models.Scholarship, error) {
	builder := r.sb.Select(scholarshipColumns).
		From("scholarships").
		OrderBy(column + " ASC")

	return r.queryScholarships(ctx, builder)
}

// likeEscaper neutralizes LIKE metacharacters so user input only ever
// matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchScholarships retrieves postings whose text fields contain the query,
// case-insensitively.
func (r *ScholarshipRepository) SearchScholarships(ctx context.Context, query string) ([]*models.Scholarship, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"
	match := squirrel.Or{}
	for _, column := range searchColumns {
		match = append(match, squirrel.ILike{column: pattern})
	}

	builder := r.sb.Select(scholarshipColumns).
		From("scholarships").
		Where(match).
		OrderBy("scholarship_post_update_date DESC")

	return r.queryScholarships(ctx, builder)
}

// UpdateScholarship applies the non-nil fields of the update and bumps the
// post update date.
func (r *ScholarshipRepository) UpdateScholarship(ctx context.Context, id int64, update *models.ScholarshipUpdate) error {
	builder := r.sb.Update("scholarships").
		Set("scholarship_post_update_date", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.ScholarshipName != nil {
		builder = builder.Set("scholarship_name", *update.ScholarshipName)
	}
	if update.UniversityName != nil {
		builder = builder.Set("university_name", *update.UniversityName)
	}
	if update.UniversityCountry != nil {
		builder = builder.Set("university_country", *update.UniversityCountry)
	}
	if update.UniversityCity != nil {
		builder = builder.Set("university_city", *update.UniversityCity)
	}
	if update.UniversityWorldRank != nil {
		builder = builder.Set("university_world_rank", *update.UniversityWorldRank)
	}
	if update.SubjectCategory != nil {
		builder = builder.Set("subject_category", *update.SubjectCategory)
	}
	if update.ScholarshipCategory != nil {
		builder = builder.Set("scholarship_category", *update.ScholarshipCategory)
	}
	if update.Degree != nil {
		builder = builder.Set("degree", *update.Degree)
	}
	if update.TuitionFees != nil {
		builder = builder.Set("tuition_fees", *update.TuitionFees)
	}
	if update.ApplicationFees != nil {
		builder = builder.Set("application_fees", *update.ApplicationFees)
	}
	if update.ServiceCharge != nil {
		builder = builder.Set("service_charge", *update.ServiceCharge)
	}
	if update.ApplicationDeadline != nil {
		builder = builder.Set("application_deadline", *update.ApplicationDeadline)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update scholarship query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scholarshipID", id).Msg("Error executing update scholarship query")
		return fmt.Errorf("error updating scholarship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScholarshipNotFound
	}

	return nil
}

// DeleteScholarship removes a posting.
func (r *ScholarshipRepository) DeleteScholarship(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("scholarships").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete scholarship query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scholarshipID", id).Msg("Error executing delete scholarship query")
		return fmt.Errorf("error deleting scholarship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScholarshipNotFound
	}

	return nil
}
