package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for missing rows. Entity repositories
// alias it so callers can match either way.
var ErrNotFound = errors.New("record not found")

// Repositories holds all repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ScholarshipRepository *ScholarshipRepository
	ApplicationRepository *ApplicationRepository
	ReviewRepository      *ReviewRepository
	StatsRepository       *StatsRepository
}

// NewRepositories creates all repositories over a shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		ScholarshipRepository: NewScholarshipRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		ReviewRepository:      NewReviewRepository(db),
		StatsRepository:       NewStatsRepository(db),
	}
}
