package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubSimulationRepo struct {
	saved   []*domain.SimulationResult // insert order, oldest first
	saveErr error
}

func (r *stubSimulationRepo) Save(_ context.Context, result *domain.SimulationResult) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *result
	clone.ID = fmt.Sprintf("sim_%d", len(r.saved)+1)
	r.saved = append(r.saved, &clone)
	return nil
}

// List mirrors the real store: newest first, capped at limit.
func (r *stubSimulationRepo) List(_ context.Context, ownerID string, limit int) ([]*domain.SimulationResult, error) {
	var out []*domain.SimulationResult
	for i := len(r.saved) - 1; i >= 0; i-- {
		if r.saved[i].OwnerID != ownerID {
			continue
		}
		clone := *r.saved[i]
		out = append(out, &clone)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type stubEngine struct {
	result *domain.SimulationResult
	err    error
	calls  int
}

func (e *stubEngine) Simulate(_ context.Context, _ *domain.UserProfile) (*domain.SimulationResult, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	clone := *e.result
	return &clone, nil
}

type stubRunGuard struct {
	held     bool  // if true, TryAcquire reports the slot as taken
	err      error // if set, TryAcquire fails
	releases int
}

func (g *stubRunGuard) TryAcquire(_ context.Context, _ string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	return !g.held, nil
}

func (g *stubRunGuard) Release(_ context.Context, _ string) error {
	g.releases++
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func goodResult() *domain.SimulationResult {
	return &domain.SimulationResult{
		Strategy:       "Balanced",
		AvgCost:        2800,
		BestCase:       1900,
		WorstCase:      4200,
		Recommendation: "Consider a mid-tier plan with moderate deductibles.",
	}
}

func simFixture(t *testing.T) (*stubProfileRepo, *stubSimulationRepo, *stubEngine, *stubRunGuard, ports.SimulationService) {
	t.Helper()
	profiles := newStubProfileRepo()
	profiles.byOwner["owner_1"] = &domain.UserProfile{
		OwnerID: "owner_1", Age: 34, Gender: domain.GenderFemale,
		Income: 52000, Savings: 8000, Dependents: 2,
		RiskTolerance: 5, HealthStatus: domain.HealthGood,
		CreatedAt: time.Now().UTC(),
	}
	results := &stubSimulationRepo{}
	eng := &stubEngine{result: goodResult()}
	guard := &stubRunGuard{}
	svc := NewSimulationService(profiles, results, eng, guard, discardLogger)
	return profiles, results, eng, guard, svc
}

func runReq(ownerID string) ports.RunRequest {
	return ports.RunRequest{OwnerID: ownerID, RequestedAt: time.Now().UTC()}
}

// ---------------------------------------------------------------------------
// Run tests
// ---------------------------------------------------------------------------

func TestSimulationService_Run_Success(t *testing.T) {
	_, results, _, guard, svc := simFixture(t)

	r, err := svc.Run(context.Background(), runReq("owner_1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.OwnerID != "owner_1" {
		t.Errorf("expected owner stamped on the result, got %q", r.OwnerID)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
	if len(results.saved) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(results.saved))
	}
	if guard.releases != 1 {
		t.Errorf("expected guard released once, got %d", guard.releases)
	}
}

func TestSimulationService_Run_NoProfile(t *testing.T) {
	_, results, _, _, svc := simFixture(t)

	_, err := svc.Run(context.Background(), runReq("stranger"))
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if len(results.saved) != 0 {
		t.Errorf("result saved without a profile")
	}
}

func TestSimulationService_Run_RejectsCostOrderViolation(t *testing.T) {
	_, results, eng, _, svc := simFixture(t)
	eng.result.BestCase = 5000 // above AvgCost

	_, err := svc.Run(context.Background(), runReq("owner_1"))
	if !errors.Is(err, domain.ErrCostOrder) {
		t.Fatalf("expected ErrCostOrder, got %v", err)
	}
	if len(results.saved) != 0 {
		t.Errorf("invalid result must not be saved")
	}
}

func TestSimulationService_Run_DuplicateSuppressed(t *testing.T) {
	_, _, eng, guard, svc := simFixture(t)
	guard.held = true

	_, err := svc.Run(context.Background(), runReq("owner_1"))
	if !errors.Is(err, domain.ErrSimulationRunning) {
		t.Fatalf("expected ErrSimulationRunning, got %v", err)
	}
	if eng.calls != 0 {
		t.Errorf("engine invoked despite a run in flight")
	}
}

func TestSimulationService_Run_GuardOutageDoesNotBlockRuns(t *testing.T) {
	_, results, _, guard, svc := simFixture(t)
	guard.err = errors.New("redis down")

	if _, err := svc.Run(context.Background(), runReq("owner_1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results.saved) != 1 {
		t.Errorf("expected run to proceed when the guard is unavailable")
	}
}

func TestSimulationService_Run_EngineFailure(t *testing.T) {
	_, results, eng, _, svc := simFixture(t)
	eng.err = errors.New("model unavailable")

	if _, err := svc.Run(context.Background(), runReq("owner_1")); err == nil {
		t.Fatal("expected error")
	}
	if len(results.saved) != 0 {
		t.Errorf("result saved despite engine failure")
	}
}

// ---------------------------------------------------------------------------
// List / LatestAverageCost tests
// ---------------------------------------------------------------------------

func TestSimulationService_List_NewestFirstWithLimit(t *testing.T) {
	_, results, eng, _, svc := simFixture(t)

	for i := 1; i <= 3; i++ {
		eng.result.AvgCost = float64(1000 * i)
		eng.result.BestCase = float64(500 * i)
		eng.result.WorstCase = float64(2000 * i)
		if _, err := svc.Run(context.Background(), runReq("owner_1")); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if len(results.saved) != 3 {
		t.Fatalf("expected 3 saved results, got %d", len(results.saved))
	}

	got, err := svc.List(context.Background(), "owner_1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].AvgCost != 3000 || got[1].AvgCost != 2000 {
		t.Errorf("expected newest first, got %v then %v", got[0].AvgCost, got[1].AvgCost)
	}
}

func TestSimulationService_LatestAverageCost(t *testing.T) {
	_, _, eng, _, svc := simFixture(t)

	eng.result.AvgCost = 2800
	if _, err := svc.Run(context.Background(), runReq("owner_1")); err != nil {
		t.Fatalf("run: %v", err)
	}
	eng.result.AvgCost = 3100
	eng.result.WorstCase = 5000
	if _, err := svc.Run(context.Background(), runReq("owner_1")); err != nil {
		t.Fatalf("run: %v", err)
	}

	cost, err := svc.LatestAverageCost(context.Background(), "owner_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != 3100 {
		t.Errorf("expected 3100, got %v", cost)
	}
}

func TestSimulationService_LatestAverageCost_NoResults(t *testing.T) {
	_, _, _, _, svc := simFixture(t)

	if _, err := svc.LatestAverageCost(context.Background(), "owner_1"); !errors.Is(err, domain.ErrNoSimulations) {
		t.Fatalf("expected ErrNoSimulations, got %v", err)
	}
}
