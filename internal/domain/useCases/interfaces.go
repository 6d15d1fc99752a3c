package useCases

import (
	"assemblyStatApp/internal/domain/model"
	"context"
	"net/http"
)

// StatisticsService defines the interface for aggregate statistics over the
// simulation store.
type StatisticsService interface {
	ComputeStats(ctx context.Context) (*model.Stats, error)
}

// SimulationRunner defines the interface for invoking the external
// simulation process.
type SimulationRunner interface {
	Run(ctx context.Context, req model.SimulationRequest) (*model.SimulationResult, error)
}

// StreamPublisher defines an interface for pushing live stats to
// WebSocket observers.
type StreamPublisher interface {
	Handler() http.HandlerFunc
	Close()
}
