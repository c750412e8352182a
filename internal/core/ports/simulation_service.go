package ports

import (
	"context"
	"time"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// SimulationEngine turns a stored profile into one cost scenario. The
// algorithm is a pluggable external capability; the service only relies on
// this contract and rejects results violating the cost-order invariant.
type SimulationEngine interface {
	Simulate(ctx context.Context, profile *domain.UserProfile) (*domain.SimulationResult, error)
}

// RunGuard suppresses duplicate simulation runs for the same owner within a
// short window (a double-clicked "Run" button must not enqueue twice).
type RunGuard interface {
	TryAcquire(ctx context.Context, ownerID string) (bool, error)
	Release(ctx context.Context, ownerID string) error
}

// RunRequest is the DTO handed from the transport layer to the dispatcher.
type RunRequest struct {
	OwnerID     string
	RequestedAt time.Time
}

// SimulationService executes runs and serves the dashboard's result reads.
type SimulationService interface {
	// Run reads the owner's stored profile, invokes the engine, validates
	// the cost order, and appends the result.
	Run(ctx context.Context, req RunRequest) (*domain.SimulationResult, error)

	List(ctx context.Context, ownerID string, limit int) ([]*domain.SimulationResult, error)

	// LatestAverageCost returns the avg_cost of the most recent result, or
	// domain.ErrNoSimulations when the owner has none.
	LatestAverageCost(ctx context.Context, ownerID string) (float64, error)
}
