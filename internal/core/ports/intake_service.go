package ports

import (
	"context"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// IntakeService drives the profile intake wizard's submit pipeline.
type IntakeService interface {
	// Submit validates the wizard's accumulated draft, resolves the current
	// owner, and upserts the normalized profile. On any failure the draft is
	// left intact in the wizard so the caller can retry.
	Submit(ctx context.Context, w *domain.Wizard) (*domain.UserProfile, error)

	// Profile returns the stored profile of the current owner.
	Profile(ctx context.Context) (*domain.UserProfile, error)
}
