// Package engine holds the baseline cost engine. The real simulation
// capability is pluggable behind ports.SimulationEngine; this implementation
// is a deliberately simple deterministic heuristic so the pipeline works out
// of the box.
package engine

import (
	"context"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// BaselineEngine derives a single cost scenario from the profile's risk
// tolerance, age, and dependents.
type BaselineEngine struct{}

func NewBaselineEngine() *BaselineEngine {
	return &BaselineEngine{}
}

func (e *BaselineEngine) Simulate(_ context.Context, p *domain.UserProfile) (*domain.SimulationResult, error) {
	strategy, spreadDown, spreadUp := strategyFor(p.RiskTolerance)

	base := 1200.0 + 28.0*float64(p.Age) + 350.0*float64(p.Dependents)
	if p.HealthStatus == domain.HealthFair {
		base *= 1.15
	}
	if p.HealthStatus == domain.HealthPoor {
		base *= 1.35
	}

	return &domain.SimulationResult{
		Strategy:       strategy,
		AvgCost:        round2(base),
		BestCase:       round2(base * spreadDown),
		WorstCase:      round2(base * spreadUp),
		Recommendation: recommendationFor(p),
	}, nil
}

// strategyFor buckets risk tolerance into the three named strategies and
// their cost spreads.
func strategyFor(risk int) (string, float64, float64) {
	switch {
	case risk <= 3:
		return "Conservative Portfolio", 0.80, 1.30
	case risk <= 7:
		return "Balanced Portfolio", 0.68, 1.50
	default:
		return "Aggressive Portfolio", 0.55, 1.80
	}
}

func recommendationFor(p *domain.UserProfile) string {
	if p.Dependents > 0 && p.Savings < p.Income {
		return "Prioritize coverage: dependents with limited savings buffer"
	}
	if p.RiskTolerance >= 8 {
		return "High risk tolerance: consider a higher deductible to lower premiums"
	}
	return "Good risk-return balance for your profile"
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
