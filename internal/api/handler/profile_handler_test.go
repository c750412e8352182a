package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

type stubIntakeService struct {
	submitFn  func(ctx context.Context, w *domain.Wizard) (*domain.UserProfile, error)
	profileFn func(ctx context.Context) (*domain.UserProfile, error)
}

func (s *stubIntakeService) Submit(ctx context.Context, w *domain.Wizard) (*domain.UserProfile, error) {
	return s.submitFn(ctx, w)
}

func (s *stubIntakeService) Profile(ctx context.Context) (*domain.UserProfile, error) {
	return s.profileFn(ctx)
}

const submitBody = `{
	"age": "34",
	"gender": "female",
	"income": "52000",
	"savings": "8000",
	"dependents": "4+",
	"risk_tolerance": "7",
	"goals": "college fund",
	"health_status": "good"
}`

func TestProfileHandler_Submit_Success(t *testing.T) {
	e := echo.New()
	stub := &stubIntakeService{
		submitFn: func(_ context.Context, w *domain.Wizard) (*domain.UserProfile, error) {
			if w.Step != domain.StepHealth {
				t.Fatalf("wizard handed over on step %d, want final", w.Step)
			}
			if w.Draft.Dependents != "4+" {
				t.Fatalf("raw dependents lost: %q", w.Draft.Dependents)
			}
			return &domain.UserProfile{
				OwnerID: "owner_1", Age: 34, Gender: domain.GenderFemale,
				Income: 52000, Savings: 8000, Dependents: 4,
				RiskTolerance: 7, Goals: "college fund",
				HealthStatus: domain.HealthGood, CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	handler := NewProfileHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(submitBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["dependents"] != float64(4) {
		t.Errorf("expected dependents 4 in response, got %v", resp["dependents"])
	}
}

func TestProfileHandler_Submit_ValidationErrorPropagates(t *testing.T) {
	e := echo.New()
	stub := &stubIntakeService{
		submitFn: func(context.Context, *domain.Wizard) (*domain.UserProfile, error) {
			return nil, &domain.FieldError{Field: "age", Reason: domain.ReasonMissing}
		},
	}
	handler := NewProfileHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Submit(c)
	var fe *domain.FieldError
	if !errors.As(err, &fe) || fe.Field != "age" {
		t.Fatalf("expected field error for age, got %v", err)
	}
}

func TestProfileHandler_Submit_MalformedBody(t *testing.T) {
	e := echo.New()
	handler := NewProfileHandler(&stubIntakeService{})

	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(`not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProfileHandler_Get_Success(t *testing.T) {
	e := echo.New()
	stub := &stubIntakeService{
		profileFn: func(context.Context) (*domain.UserProfile, error) {
			return &domain.UserProfile{
				OwnerID: "owner_1", Age: 40, Gender: domain.GenderMale,
				HealthStatus: domain.HealthFair, CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	handler := NewProfileHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["age"] != float64(40) || resp["health_status"] != "fair" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestProfileHandler_Get_NotFoundPropagates(t *testing.T) {
	e := echo.New()
	stub := &stubIntakeService{
		profileFn: func(context.Context) (*domain.UserProfile, error) {
			return nil, domain.ErrProfileNotFound
		},
	}
	handler := NewProfileHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Get(c); err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
