package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

// IntakeService implements the wizard submit pipeline.
type IntakeService struct {
	profiles ports.ProfileRepository
	session  ports.SessionProvider
	bounds   domain.ProfileBounds
	logger   zerolog.Logger
}

func NewIntakeService(
	profiles ports.ProfileRepository,
	session ports.SessionProvider,
	bounds domain.ProfileBounds,
	logger zerolog.Logger,
) *IntakeService {
	if bounds == (domain.ProfileBounds{}) {
		bounds = domain.DefaultProfileBounds
	}
	return &IntakeService{profiles: profiles, session: session, bounds: bounds, logger: logger}
}

// Submit validates the wizard's draft, resolves the current owner, and
// upserts the normalized profile. Every failure leaves the draft in place;
// nothing retries automatically.
func (s *IntakeService) Submit(ctx context.Context, w *domain.Wizard) (*domain.UserProfile, error) {
	if err := w.CanSubmit(); err != nil {
		return nil, err
	}

	// 1. Validate the accumulated draft. A field error is local: the wizard
	// stays on the final step so the user can correct and resubmit.
	profile, err := domain.ValidateDraft(w.Draft, s.bounds)
	if err != nil {
		var fe *domain.FieldError
		if errors.As(err, &fe) {
			s.logger.Debug().Str("field", fe.Field).Str("reason", string(fe.Reason)).Msg("draft rejected")
		}
		return nil, err
	}

	// 2. Resolve the owner at submit time, not from state captured during
	// draft entry. A logout between steps must surface here.
	ownerID, err := s.session.CurrentOwner(ctx)
	if err != nil {
		w.MarkFailed(domain.ErrUnauthenticated)
		return nil, domain.ErrUnauthenticated
	}
	profile.OwnerID = ownerID

	// 3. Atomic whole-row upsert on conflict(owner).
	if err := s.profiles.Upsert(ctx, ownerID, profile); err != nil {
		w.MarkFailed(err)
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("profile upsert failed")
		return nil, fmt.Errorf("submit profile: %w", err)
	}

	w.MarkSubmitted()
	s.logger.Info().Str("owner_id", ownerID).Int("age", profile.Age).Msg("profile saved")
	return profile, nil
}

// Profile returns the stored profile of the current owner.
func (s *IntakeService) Profile(ctx context.Context) (*domain.UserProfile, error) {
	ownerID, err := s.session.CurrentOwner(ctx)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.profiles.Get(ctx, ownerID)
}
