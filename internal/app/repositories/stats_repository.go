package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholarstream/scholarstream/internal/app/models"
)

// StatsRepository serves the dashboard's aggregate counters.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// PlatformStats is the raw aggregate snapshot read from storage.
type PlatformStats struct {
	TotalUsers        int64
	TotalScholarships int64
	TotalApplications int64
	PaidApplications  int64
	TotalReviews      int64
	TotalRevenue      float64
}

// GetPlatformStats reads all dashboard counters in one round trip.
func (r *StatsRepository) GetPlatformStats(ctx context.Context) (*PlatformStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM scholarships),
			(SELECT COUNT(*) FROM applications),
			(SELECT COUNT(*) FROM applications WHERE payment_status = $1),
			(SELECT COUNT(*) FROM reviews),
			(SELECT COALESCE(SUM(amount_paid), 0) FROM applications WHERE payment_status = $1)`

	stats := &PlatformStats{}
	err := r.db.QueryRow(ctx, query, models.PaymentPaid).Scan(
		&stats.TotalUsers,
		&stats.TotalScholarships,
		&stats.TotalApplications,
		&stats.PaidApplications,
		&stats.TotalReviews,
		&stats.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("error reading platform stats: %w", err)
	}

	return stats, nil
}
