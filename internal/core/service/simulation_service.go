package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

type simulationService struct {
	profiles ports.ProfileRepository
	results  ports.SimulationRepository
	engine   ports.SimulationEngine
	guard    ports.RunGuard
	log      zerolog.Logger
}

// NewSimulationService returns a SimulationService implementation.
func NewSimulationService(
	profiles ports.ProfileRepository,
	results ports.SimulationRepository,
	engine ports.SimulationEngine,
	guard ports.RunGuard,
	log zerolog.Logger,
) ports.SimulationService {
	return &simulationService{
		profiles: profiles,
		results:  results,
		engine:   engine,
		guard:    guard,
		log:      log,
	}
}

// Run executes one simulation for the owner: load the stored profile, invoke
// the engine, validate the cost-order invariant, append the result.
func (s *simulationService) Run(ctx context.Context, req ports.RunRequest) (*domain.SimulationResult, error) {
	// 1. Guard against a double-clicked run for the same owner.
	ok, err := s.guard.TryAcquire(ctx, req.OwnerID)
	if err != nil {
		s.log.Warn().Err(err).Str("owner_id", req.OwnerID).Msg("run guard unavailable, proceeding")
	} else if !ok {
		s.log.Debug().Str("owner_id", req.OwnerID).Msg("duplicate run suppressed")
		return nil, domain.ErrSimulationRunning
	}
	defer func() {
		if relErr := s.guard.Release(ctx, req.OwnerID); relErr != nil {
			s.log.Warn().Err(relErr).Str("owner_id", req.OwnerID).Msg("failed to release run guard")
		}
	}()

	// 2. A run needs a completed profile.
	profile, err := s.profiles.Get(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("simulation run: %w", err)
	}

	// 3. The engine is an external capability; only its output contract is
	// trusted, and even that gets checked.
	result, err := s.engine.Simulate(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("simulation run: engine: %w", err)
	}
	result.OwnerID = req.OwnerID
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}

	// 4. Reject insane producers before anything is stored.
	if err := result.ValidateCostOrder(); err != nil {
		return nil, fmt.Errorf("simulation run: %w", err)
	}

	// 5. Append-only save.
	if err := s.results.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("simulation run: save: %w", err)
	}

	s.log.Info().
		Str("owner_id", req.OwnerID).
		Str("strategy", result.Strategy).
		Float64("avg_cost", result.AvgCost).
		Msg("simulation completed")

	return result, nil
}

func (s *simulationService) List(ctx context.Context, ownerID string, limit int) ([]*domain.SimulationResult, error) {
	return s.results.List(ctx, ownerID, limit)
}

// LatestAverageCost is the dashboard's sole aggregation: the avg_cost of the
// most recent result, or ErrNoSimulations when the owner has none.
func (s *simulationService) LatestAverageCost(ctx context.Context, ownerID string) (float64, error) {
	latest, err := s.results.List(ctx, ownerID, 1)
	if err != nil {
		return 0, err
	}
	if len(latest) == 0 {
		return 0, domain.ErrNoSimulations
	}
	return latest[0].AvgCost, nil
}
