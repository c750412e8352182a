package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

type stubSimulationService struct {
	listFn   func(ctx context.Context, ownerID string, limit int) ([]*domain.SimulationResult, error)
	latestFn func(ctx context.Context, ownerID string) (float64, error)
}

func (s *stubSimulationService) Run(context.Context, ports.RunRequest) (*domain.SimulationResult, error) {
	return nil, nil
}

func (s *stubSimulationService) List(ctx context.Context, ownerID string, limit int) ([]*domain.SimulationResult, error) {
	return s.listFn(ctx, ownerID, limit)
}

func (s *stubSimulationService) LatestAverageCost(ctx context.Context, ownerID string) (float64, error) {
	return s.latestFn(ctx, ownerID)
}

type stubDispatcher struct {
	enqueued []ports.RunRequest
}

func (d *stubDispatcher) Enqueue(req ports.RunRequest) {
	d.enqueued = append(d.enqueued, req)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("owner_id", "owner_1")
	return c
}

func TestSimulationHandler_Run_Enqueues(t *testing.T) {
	e := echo.New()
	dispatcher := &stubDispatcher{}
	handler := NewSimulationHandler(&stubSimulationService{}, dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/v1/simulations", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.Run(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 1 {
		t.Fatalf("expected 1 enqueued run, got %d", len(dispatcher.enqueued))
	}
	if dispatcher.enqueued[0].OwnerID != "owner_1" {
		t.Errorf("enqueued for wrong owner: %q", dispatcher.enqueued[0].OwnerID)
	}
}

func TestSimulationHandler_Run_RequiresOwner(t *testing.T) {
	e := echo.New()
	dispatcher := &stubDispatcher{}
	handler := NewSimulationHandler(&stubSimulationService{}, dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/v1/simulations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no owner_id set

	err := handler.Run(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Errorf("run enqueued without an owner")
	}
}

func TestSimulationHandler_List_DefaultLimit(t *testing.T) {
	e := echo.New()
	var gotLimit int
	svc := &stubSimulationService{
		listFn: func(_ context.Context, ownerID string, limit int) ([]*domain.SimulationResult, error) {
			gotLimit = limit
			return []*domain.SimulationResult{
				{ID: "sim_2", AvgCost: 3000, CreatedAt: time.Now().UTC()},
				{ID: "sim_1", AvgCost: 2000, CreatedAt: time.Now().UTC().Add(-time.Hour)},
			}, nil
		},
	}
	handler := NewSimulationHandler(svc, &stubDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/v1/simulations", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotLimit != 2 {
		t.Errorf("expected default limit 2, got %d", gotLimit)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "sim_2" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestSimulationHandler_List_RejectsBadLimit(t *testing.T) {
	e := echo.New()
	handler := NewSimulationHandler(&stubSimulationService{}, &stubDispatcher{})

	for _, raw := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/simulations?limit="+raw, nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec)

		err := handler.List(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Errorf("limit=%q: expected 400, got %v", raw, err)
		}
	}
}

func TestSimulationHandler_List_CapsLimit(t *testing.T) {
	e := echo.New()
	var gotLimit int
	svc := &stubSimulationService{
		listFn: func(_ context.Context, _ string, limit int) ([]*domain.SimulationResult, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	handler := NewSimulationHandler(svc, &stubDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/v1/simulations?limit=5000", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotLimit != maxResultLimit {
		t.Errorf("expected limit capped at %d, got %d", maxResultLimit, gotLimit)
	}
}

func TestSimulationHandler_LatestCost(t *testing.T) {
	e := echo.New()
	svc := &stubSimulationService{
		latestFn: func(context.Context, string) (float64, error) { return 2800, nil },
	}
	handler := NewSimulationHandler(svc, &stubDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/v1/simulations/latest-cost", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.LatestCost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["avg_cost"] != 2800 {
		t.Errorf("expected 2800, got %v", resp["avg_cost"])
	}
}

func TestSimulationHandler_LatestCost_NoResultsPropagates(t *testing.T) {
	e := echo.New()
	svc := &stubSimulationService{
		latestFn: func(context.Context, string) (float64, error) { return 0, domain.ErrNoSimulations },
	}
	handler := NewSimulationHandler(svc, &stubDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/v1/simulations/latest-cost", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.LatestCost(c); err != domain.ErrNoSimulations {
		t.Fatalf("expected ErrNoSimulations, got %v", err)
	}
}
