package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coverwise/risk-profile-api/internal/api/metrics"
	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

// ReportHandler handles report generation and listings.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type reportResponse struct {
	ReportID  string          `json:"report_id"`
	Data      json.RawMessage `json:"data"`
	PDFURL    string          `json:"pdf_url"`
	CreatedAt time.Time       `json:"created_at"`
}

// Generate handles POST /v1/reports.
//
// @Summary      Generate a report from the latest simulation results
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  reportResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reports [post]
func (h *ReportHandler) Generate(c echo.Context) error {
	ownerID, err := ctxOwner(c)
	if err != nil {
		return err
	}

	report, err := h.service.Generate(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.Inc()
	return c.JSON(http.StatusCreated, toReportResponse(report))
}

// List handles GET /v1/reports — newest first.
//
// @Summary      List generated reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   reportResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	ownerID, err := ctxOwner(c)
	if err != nil {
		return err
	}

	reports, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	out := make([]reportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, toReportResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ReportID:  r.ReportID,
		Data:      json.RawMessage(r.JSONData),
		PDFURL:    r.PDFRef,
		CreatedAt: r.CreatedAt.UTC(),
	}
}
