package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coverwise/risk-profile-api/internal/api/metrics"
	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for the intake wizard's server side.
type ProfileHandler struct {
	intake ports.IntakeService
}

func NewProfileHandler(intake ports.IntakeService) *ProfileHandler {
	return &ProfileHandler{intake: intake}
}

// Submit handles PUT /v1/profile — a completed wizard draft.
//
// @Summary      Submit the intake wizard draft
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileSubmitRequest  true  "Wizard draft, raw field values"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/profile [put]
func (h *ProfileHandler) Submit(c echo.Context) error {
	var req profileSubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	// Rebuild the wizard at its final step; the client already walked the
	// screens, the server replays the terminal submit transition.
	w := domain.NewWizard()
	w.Draft = domain.ProfileDraft{
		Age:           req.Age,
		Gender:        req.Gender,
		Income:        req.Income,
		Savings:       req.Savings,
		Dependents:    req.Dependents,
		RiskTolerance: req.RiskTolerance,
		Goals:         req.Goals,
		HealthStatus:  req.HealthStatus,
	}
	for w.Step != domain.StepHealth {
		_ = w.Next()
	}

	profile, err := h.intake.Submit(c.Request().Context(), w)
	if err != nil {
		metrics.SubmissionErrorsTotal.WithLabelValues(submitFailureReason(err)).Inc()
		return err
	}

	metrics.ProfilesSavedTotal.Inc()
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Get handles GET /v1/profile.
//
// @Summary      Get the stored profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.intake.Profile(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(p *domain.UserProfile) profileResponse {
	return profileResponse{
		Age:           p.Age,
		Gender:        string(p.Gender),
		Income:        p.Income,
		Savings:       p.Savings,
		Dependents:    p.Dependents,
		RiskTolerance: p.RiskTolerance,
		Goals:         p.Goals,
		HealthStatus:  string(p.HealthStatus),
		CreatedAt:     p.CreatedAt,
	}
}

func submitFailureReason(err error) string {
	var fe *domain.FieldError
	switch {
	case errors.As(err, &fe):
		return "validation"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	default:
		return "persistence"
	}
}
