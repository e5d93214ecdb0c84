package services

import (
	"context"
	"fmt"

	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/repositories"
)

// StatsRepository is the aggregate storage access the dashboard needs.
type StatsRepository interface {
	GetPlatformStats(ctx context.Context) (*repositories.PlatformStats, error)
}

// DashboardService serves the aggregate dashboard view.
type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardServiceImpl struct {
	statsRepo StatsRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(statsRepo StatsRepository) DashboardService {
	return &dashboardServiceImpl{
		statsRepo: statsRepo,
	}
}

// GetStats reads the platform counters.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats, err := s.statsRepo.GetPlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading dashboard stats: %w", err)
	}

	return &dto.DashboardStats{
		TotalUsers:        stats.TotalUsers,
		TotalScholarships: stats.TotalScholarships,
		TotalApplications: stats.TotalApplications,
		PaidApplications:  stats.PaidApplications,
		TotalReviews:      stats.TotalReviews,
		TotalRevenue:      stats.TotalRevenue,
	}, nil
}
