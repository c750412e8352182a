package ports

import (
	"context"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// ReportRepository stores generated reports. Rows are immutable once created.
type ReportRepository interface {
	Insert(ctx context.Context, report *domain.Report) error
	List(ctx context.Context, ownerID string) ([]*domain.Report, error)
}

// ReportService generates and lists per-owner reports.
type ReportService interface {
	// Generate builds an immutable report from the owner's most recent
	// simulation results. Fails with domain.ErrNoSimulations when none exist.
	Generate(ctx context.Context, ownerID string) (*domain.Report, error)
	List(ctx context.Context, ownerID string) ([]*domain.Report, error)
}
