package ports

import (
	"context"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// InsuranceDataRepository reads parsed policy metadata. Rows are written by
// an external analysis pipeline; this service never populates them.
type InsuranceDataRepository interface {
	List(ctx context.Context, ownerID string) ([]*domain.InsuranceData, error)
}
