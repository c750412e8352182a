package ports

import (
	"context"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// ProfileRepository persists the single profile each owner may hold.
type ProfileRepository interface {
	// Upsert inserts the profile or replaces the whole existing row sharing
	// the same owner id, as one atomic store-level operation. created_at is
	// preserved from the first insert. Idempotent: repeating the call with
	// identical input leaves the same single stored row.
	Upsert(ctx context.Context, ownerID string, profile *domain.UserProfile) error

	// Get returns the owner's profile or domain.ErrProfileNotFound.
	Get(ctx context.Context, ownerID string) (*domain.UserProfile, error)
}
