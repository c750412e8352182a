package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

// DashboardHandler composes the dashboard read model in one round trip:
// the stored profile, the two most recent simulation results, the latest
// average cost and the uploaded documents.
type DashboardHandler struct {
	intake      ports.IntakeService
	simulations ports.SimulationService
	documents   ports.DocumentService
}

func NewDashboardHandler(intake ports.IntakeService, simulations ports.SimulationService, documents ports.DocumentService) *DashboardHandler {
	return &DashboardHandler{
		intake:      intake,
		simulations: simulations,
		documents:   documents,
	}
}

type dashboardResponse struct {
	Profile       *profileResponse           `json:"profile"`
	LatestResults []simulationResultResponse `json:"latest_results"`
	LatestAvgCost *float64                   `json:"latest_avg_cost"`
	Documents     []documentResponse         `json:"documents"`
}

// Get handles GET /v1/dashboard. Missing pieces are tolerated: a user who
// has not finished the wizard still gets a dashboard with a null profile.
//
// @Summary      Dashboard read model
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	ownerID, err := ctxOwner(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	resp := dashboardResponse{
		LatestResults: []simulationResultResponse{},
		Documents:     []documentResponse{},
	}

	profile, err := h.intake.Profile(ctx)
	switch {
	case err == nil:
		p := toProfileResponse(profile)
		resp.Profile = &p
	case errors.Is(err, domain.ErrProfileNotFound):
		// new user, wizard not submitted yet
	default:
		return err
	}

	results, err := h.simulations.List(ctx, ownerID, defaultResultLimit)
	if err != nil {
		return err
	}
	for _, r := range results {
		resp.LatestResults = append(resp.LatestResults, toSimulationResponse(r))
	}

	cost, err := h.simulations.LatestAverageCost(ctx, ownerID)
	switch {
	case err == nil:
		resp.LatestAvgCost = &cost
	case errors.Is(err, domain.ErrNoSimulations):
		// no runs yet
	default:
		return err
	}

	docs, err := h.documents.List(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, toDocumentResponse(d))
	}

	return c.JSON(http.StatusOK, resp)
}
