package domain

import (
	"errors"
	"time"
)

var ErrCostOrder = errors.New("cost order violated: want best_case <= avg_cost <= worst_case")
var ErrNoSimulations = errors.New("no simulation results")
var ErrSimulationRunning = errors.New("a simulation run is already in flight")

// SimulationResult is one computed insurance-cost scenario for an owner.
// Results are append-only: created by a simulation run, never mutated.
type SimulationResult struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	OwnerID        string    `json:"owner_id" bson:"user_id"`
	Strategy       string    `json:"strategy" bson:"strategy"`
	AvgCost        float64   `json:"avg_cost" bson:"avg_cost"`
	BestCase       float64   `json:"best_case" bson:"best_case"`
	WorstCase      float64   `json:"worst_case" bson:"worst_case"`
	Recommendation string    `json:"recommendation" bson:"recommendation"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// ValidateCostOrder rejects results from a producer whose scenario costs are
// not ordered best <= average <= worst.
func (r *SimulationResult) ValidateCostOrder() error {
	if r.BestCase > r.AvgCost || r.AvgCost > r.WorstCase {
		return ErrCostOrder
	}
	return nil
}
