package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

// InsuranceHandler serves parsed policy metadata produced by the external
// document analysis pipeline.
type InsuranceHandler struct {
	repo ports.InsuranceDataRepository
}

func NewInsuranceHandler(repo ports.InsuranceDataRepository) *InsuranceHandler {
	return &InsuranceHandler{repo: repo}
}

type insuranceDataResponse struct {
	ID         string    `json:"id"`
	Provider   string    `json:"provider"`
	Coverage   float64   `json:"coverage"`
	Premium    float64   `json:"premium"`
	Deductible float64   `json:"deductible"`
	Duration   int       `json:"duration"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// List handles GET /v1/insurance-data.
//
// @Summary      List parsed policy metadata
// @Tags         insurance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   insuranceDataResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/insurance-data [get]
func (h *InsuranceHandler) List(c echo.Context) error {
	ownerID, err := ctxOwner(c)
	if err != nil {
		return err
	}

	rows, err := h.repo.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	out := make([]insuranceDataResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, insuranceDataResponse{
			ID:         r.ID,
			Provider:   r.Provider,
			Coverage:   r.Coverage,
			Premium:    r.Premium,
			Deductible: r.Deductible,
			Duration:   r.Duration,
			UploadedAt: r.UploadedAt.UTC(),
		})
	}
	return c.JSON(http.StatusOK, out)
}
