package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coverwise/risk-profile-api/internal/api/metrics"
	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

// DocumentHandler handles policy document uploads and listings.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type documentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"size_bytes"`
	StorageRef string    `json:"storage_ref"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Upload handles POST /v1/documents (multipart, field "file").
//
// @Summary      Upload a policy document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "PDF, DOC or DOCX, max 10MB"
// @Success      201   {object}  documentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      413   {object}  errorResponse
// @Failure      415   {object}  errorResponse
// @Router       /v1/documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	ownerID, err := ctxOwner(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	doc, err := h.service.Upload(c.Request().Context(), ownerID, ports.UploadDocumentInput{
		Name:      fh.Filename,
		SizeBytes: fh.Size,
		Body:      src,
	})
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(uploadFailureResult(err)).Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusCreated, toDocumentResponse(doc))
}

// List handles GET /v1/documents — newest first.
//
// @Summary      List uploaded documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   documentResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	ownerID, err := ctxOwner(c)
	if err != nil {
		return err
	}

	docs, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return c.JSON(http.StatusOK, out)
}

func toDocumentResponse(d *domain.UploadedDocument) documentResponse {
	return documentResponse{
		ID:         d.ID,
		Name:       d.Name,
		SizeBytes:  d.SizeBytes,
		StorageRef: d.StorageRef,
		UploadedAt: d.UploadedAt.UTC(),
	}
}

func uploadFailureResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrFileTooLarge):
		return "too_large"
	case errors.Is(err, domain.ErrUnsupportedType):
		return "unsupported_type"
	default:
		return "failed"
	}
}
