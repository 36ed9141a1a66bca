package service

import (
	"context"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// Stats aggregates dashboard figures.
type Stats struct {
	TicketsByStatus   map[domain.TicketStatus]int64
	TicketsByCategory []repository.CategoryTicketCount
	ActiveStaffCount  int64
}

// StatsService composes the aggregate reads for the admin dashboard.
type StatsService struct {
	stats repository.StatsRepository
}

// NewStatsService constructs the service.
func NewStatsService(stats repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// Overview returns the full dashboard aggregate.
func (s *StatsService) Overview(ctx context.Context) (*Stats, error) {
	byStatus, err := s.stats.CountTicketsByStatus(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	byCategory, err := s.stats.CountTicketsByCategory(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	staffCount, err := s.stats.CountStaff(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &Stats{
		TicketsByStatus:   byStatus,
		TicketsByCategory: byCategory,
		ActiveStaffCount:  staffCount,
	}, nil
}
