package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coverwise/risk-profile-api/internal/api/metrics"
	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

const (
	defaultResultLimit = 2 // the dashboard's latest-results view
	maxResultLimit     = 100
)

// RunDispatcher is the interface the handler uses to enqueue simulation runs.
type RunDispatcher interface {
	Enqueue(req ports.RunRequest)
}

// SimulationHandler handles simulation runs and result reads.
type SimulationHandler struct {
	service    ports.SimulationService
	dispatcher RunDispatcher
}

func NewSimulationHandler(service ports.SimulationService, dispatcher RunDispatcher) *SimulationHandler {
	return &SimulationHandler{service: service, dispatcher: dispatcher}
}

type simulationResultResponse struct {
	ID             string    `json:"id"`
	Strategy       string    `json:"strategy"`
	AvgCost        float64   `json:"avg_cost"`
	BestCase       float64   `json:"best_case"`
	WorstCase      float64   `json:"worst_case"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

type latestCostResponse struct {
	AvgCost float64 `json:"avg_cost"`
}

// Run handles POST /v1/simulations — enqueues an asynchronous run, returns 202.
//
// @Summary      Run a new simulation
// @Tags         simulations
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  acceptedResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/simulations [post]
func (h *SimulationHandler) Run(c echo.Context) error {
	ownerID, err := ctxOwner(c)
	if err != nil {
		return err
	}

	h.dispatcher.Enqueue(ports.RunRequest{
		OwnerID:     ownerID,
		RequestedAt: time.Now().UTC(),
	})
	metrics.SimulationsEnqueuedTotal.Inc()

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "simulation run accepted"})
}

// List handles GET /v1/simulations?limit=N — most recent results first.
//
// @Summary      List recent simulation results
// @Tags         simulations
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max results (default 2, cap 100)"
// @Success      200    {array}   simulationResultResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/simulations [get]
func (h *SimulationHandler) List(c echo.Context) error {
	ownerID, err := ctxOwner(c)
	if err != nil {
		return err
	}

	limit := defaultResultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	if limit > maxResultLimit {
		limit = maxResultLimit
	}

	results, err := h.service.List(c.Request().Context(), ownerID, limit)
	if err != nil {
		return err
	}

	out := make([]simulationResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toSimulationResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

// LatestCost handles GET /v1/simulations/latest-cost.
//
// @Summary      Average cost of the most recent simulation
// @Tags         simulations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  latestCostResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/simulations/latest-cost [get]
func (h *SimulationHandler) LatestCost(c echo.Context) error {
	ownerID, err := ctxOwner(c)
	if err != nil {
		return err
	}

	cost, err := h.service.LatestAverageCost(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, latestCostResponse{AvgCost: cost})
}

func toSimulationResponse(r *domain.SimulationResult) simulationResultResponse {
	return simulationResultResponse{
		ID:             r.ID,
		Strategy:       r.Strategy,
		AvgCost:        r.AvgCost,
		BestCase:       r.BestCase,
		WorstCase:      r.WorstCase,
		Recommendation: r.Recommendation,
		CreatedAt:      r.CreatedAt.UTC(),
	}
}
