// Package session resolves the authenticated owner from the request context.
// The auth middleware stashes the owner id per request; nothing is ever
// cached across calls, so a logout between draft entry and submission is
// always observed.
package session

import (
	"context"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

type ctxKey struct{}

// WithOwner binds an owner id to ctx. Called by the auth middleware after
// token verification; tests use it to fake a session.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ownerID)
}

// OwnerFrom extracts the owner id bound to ctx, if any.
func OwnerFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// ContextProvider implements ports.SessionProvider over the request context.
type ContextProvider struct{}

func NewContextProvider() *ContextProvider {
	return &ContextProvider{}
}

// CurrentOwner reads the owner bound to ctx at call time.
func (p *ContextProvider) CurrentOwner(ctx context.Context) (string, error) {
	id, ok := OwnerFrom(ctx)
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return id, nil
}
