package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

// reportResultCount is how many recent results a report summarizes, matching
// the dashboard's latest-results view.
const reportResultCount = 2

type reportService struct {
	results ports.SimulationRepository
	reports ports.ReportRepository
	log     zerolog.Logger
}

// NewReportService returns a ReportService implementation.
func NewReportService(results ports.SimulationRepository, reports ports.ReportRepository, log zerolog.Logger) ports.ReportService {
	return &reportService{results: results, reports: reports, log: log}
}

// reportPayload is the structured json_data stored on a report row.
type reportPayload struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Results     []reportResult `json:"results"`
}

type reportResult struct {
	Strategy       string  `json:"strategy"`
	AvgCost        float64 `json:"avg_cost"`
	BestCase       float64 `json:"best_case"`
	WorstCase      float64 `json:"worst_case"`
	Recommendation string  `json:"recommendation"`
}

// Generate builds an immutable report from the owner's most recent results.
func (s *reportService) Generate(ctx context.Context, ownerID string) (*domain.Report, error) {
	latest, err := s.results.List(ctx, ownerID, reportResultCount)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}
	if len(latest) == 0 {
		return nil, domain.ErrNoSimulations
	}

	payload := reportPayload{GeneratedAt: time.Now().UTC()}
	for _, r := range latest {
		payload.Results = append(payload.Results, reportResult{
			Strategy:       r.Strategy,
			AvgCost:        r.AvgCost,
			BestCase:       r.BestCase,
			WorstCase:      r.WorstCase,
			Recommendation: r.Recommendation,
		})
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("generate report: marshal: %w", err)
	}

	reportID := generateReportID()
	report := &domain.Report{
		ReportID:  reportID,
		OwnerID:   ownerID,
		JSONData:  data,
		PDFRef:    fmt.Sprintf("reports/%s/%s.pdf", ownerID, reportID),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reports.Insert(ctx, report); err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	s.log.Info().Str("owner_id", ownerID).Str("report_id", reportID).Int("results", len(latest)).Msg("report generated")
	return report, nil
}

func (s *reportService) List(ctx context.Context, ownerID string) ([]*domain.Report, error) {
	return s.reports.List(ctx, ownerID)
}

// generateReportID returns a unique report id in the format RPT-XXXXXXXX.
func generateReportID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("RPT-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("RPT-%08X", b)
}
