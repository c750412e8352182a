package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Draft validation errors carry the failing field.
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		return http.StatusUnprocessableEntity, errorResponse{Error: fe.Error(), Field: fe.Field}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "not authenticated"}
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, errorResponse{Error: "profile not found"}
	case errors.Is(err, domain.ErrNoSimulations):
		return http.StatusNotFound, errorResponse{Error: "no simulation results"}
	case errors.Is(err, domain.ErrSimulationRunning):
		return http.StatusConflict, errorResponse{Error: "a simulation run is already in flight"}
	case errors.Is(err, domain.ErrCostOrder):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, errorResponse{Error: "file exceeds the maximum upload size"}
	case errors.Is(err, domain.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType, errorResponse{Error: "unsupported document type"}
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, errorResponse{Error: "document not found"}
	case errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound, errorResponse{Error: "report not found"}
	case errors.Is(err, domain.ErrWizardNotOnFinalStep), errors.Is(err, domain.ErrWizardAlreadySubmitted):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: "user already exists"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
