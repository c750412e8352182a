package ports

import "context"

// SessionProvider supplies the authenticated owner identity. Implementations
// must resolve the owner at call time, never from a value captured earlier:
// a logout between draft entry and submission has to be observable.
type SessionProvider interface {
	// CurrentOwner returns the owner id bound to ctx, or
	// domain.ErrUnauthenticated when no session is present.
	CurrentOwner(ctx context.Context) (string, error)
}
