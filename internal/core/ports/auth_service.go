package ports

import (
	"context"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
