package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/port"
)

type StatsService struct {
	stats    port.StatsRepository
	fallback *Fallback
	log      zerolog.Logger
}

func NewStatsService(stats port.StatsRepository, fallback *Fallback, log zerolog.Logger) *StatsService {
	return &StatsService{stats: stats, fallback: fallback, log: log}
}

// HotCategories serves the fixed chart data on any storage error.
func (s *StatsService) HotCategories(ctx context.Context) []domain.CategoryCount {
	counts, err := s.stats.HotCategories(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("hot categories query failed, serving fallback")
		return s.fallback.HotCategories()
	}
	return counts
}

// PriceDistribution serves the fixed chart data on any storage error.
func (s *StatsService) PriceDistribution(ctx context.Context) []domain.PriceBucket {
	buckets, err := s.stats.PriceDistribution(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("price distribution query failed, serving fallback")
		return s.fallback.PriceDistribution()
	}
	return buckets
}

func (s *StatsService) TableStats(ctx context.Context) (*domain.TableStats, error) {
	return s.stats.TableStats(ctx)
}
