package ports

import (
	"context"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// SimulationRepository stores computed cost scenarios. Results are
// append-only; no update or delete path exists.
type SimulationRepository interface {
	Save(ctx context.Context, result *domain.SimulationResult) error

	// List returns at most limit results for the owner, newest first.
	// limit <= 0 means no cap.
	List(ctx context.Context, ownerID string, limit int) ([]*domain.SimulationResult, error)
}
