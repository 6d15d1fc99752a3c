package service

import (
	"assemblyStatApp/internal/domain/model"
	"assemblyStatApp/internal/domain/repository"
	"assemblyStatApp/internal/domain/useCases"
	"context"
	"math"
)

// StatsService derives aggregate statistics from the simulation store.
// Every call recomputes from the current store content; there is no cache,
// so observers always see what the last simulation run actually wrote.
type StatsService struct {
	orders   repository.OrderReader
	stations repository.StationReader
}

func NewStatsService(orders repository.OrderReader, stations repository.StationReader) *StatsService {
	return &StatsService{orders: orders, stations: stations}
}

// Ensure StatsService implements the StatisticsService interface
var _ useCases.StatisticsService = (*StatsService)(nil)

// ComputeStats builds the current stats snapshot. When the store has not
// been created yet every count is zero and MostActiveStation is nil; that
// is the normal state before the first simulation run, not an error.
func (s *StatsService) ComputeStats(ctx context.Context) (*model.Stats, error) {
	total, err := s.orders.CountOrders(ctx, repository.FilterAll)
	if err != nil {
		return nil, err
	}
	completed, err := s.orders.CountOrders(ctx, repository.FilterCompleted)
	if err != nil {
		return nil, err
	}

	stats := &model.Stats{
		TotalOrders:      total,
		CompletedOrders:  completed,
		IncompleteOrders: total - completed,
	}
	if total > 0 {
		stats.CompletionRate = round2(float64(completed) / float64(total) * 100)
	}

	// Busiest station by summed items_processed. Ties fall to whichever
	// name the grouped query yields first.
	totals, err := s.stations.StationTotals(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(totals) > 0 {
		name := totals[0].StationName
		stats.MostActiveStation = &name
	}

	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
