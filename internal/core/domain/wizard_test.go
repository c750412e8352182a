package domain

import (
	"errors"
	"testing"
)

func TestWizard_StartsAtFirstStep(t *testing.T) {
	w := NewWizard()
	if w.Step != StepPersonal {
		t.Errorf("expected StepPersonal, got %d", w.Step)
	}
	if w.Status != WizardInProgress {
		t.Errorf("expected in_progress, got %q", w.Status)
	}
}

func TestWizard_NextAdvancesWithoutGating(t *testing.T) {
	// an empty draft must not block forward navigation
	w := NewWizard()
	for _, want := range []Step{StepFinancial, StepRisk, StepHealth} {
		if err := w.Next(); err != nil {
			t.Fatalf("Next failed at step %d: %v", w.Step, err)
		}
		if w.Step != want {
			t.Fatalf("expected step %d, got %d", want, w.Step)
		}
	}
	if err := w.Next(); !errors.Is(err, ErrWizardStepBounds) {
		t.Errorf("expected ErrWizardStepBounds past the last step, got %v", err)
	}
}

func TestWizard_PreviousStopsAtFirstStep(t *testing.T) {
	w := NewWizard()
	if err := w.Previous(); !errors.Is(err, ErrWizardStepBounds) {
		t.Errorf("expected ErrWizardStepBounds before the first step, got %v", err)
	}
}

func TestWizard_DraftSurvivesNavigation(t *testing.T) {
	w := NewWizard()
	w.Draft.Age = "40"
	w.Draft.Gender = "male"

	_ = w.Next()
	w.Draft.Income = "60000"
	_ = w.Previous()
	_ = w.Next()
	_ = w.Next()

	if w.Draft.Age != "40" || w.Draft.Gender != "male" || w.Draft.Income != "60000" {
		t.Errorf("draft mutated by navigation: %+v", w.Draft)
	}
}

func TestWizard_CanSubmitOnlyFromFinalStep(t *testing.T) {
	w := NewWizard()
	if err := w.CanSubmit(); !errors.Is(err, ErrWizardNotOnFinalStep) {
		t.Errorf("expected ErrWizardNotOnFinalStep, got %v", err)
	}

	for w.Step != StepHealth {
		_ = w.Next()
	}
	if err := w.CanSubmit(); err != nil {
		t.Errorf("expected submit allowed on final step, got %v", err)
	}
}

func TestWizard_CannotSubmitTwice(t *testing.T) {
	w := NewWizard()
	for w.Step != StepHealth {
		_ = w.Next()
	}
	w.MarkSubmitted()

	if err := w.CanSubmit(); !errors.Is(err, ErrWizardAlreadySubmitted) {
		t.Errorf("expected ErrWizardAlreadySubmitted, got %v", err)
	}
}

func TestWizard_FailedAttemptMayRetry(t *testing.T) {
	w := NewWizard()
	for w.Step != StepHealth {
		_ = w.Next()
	}
	w.Draft.Age = "34"
	w.MarkFailed(ErrUnauthenticated)

	if w.Status != WizardFailed {
		t.Fatalf("expected failed status, got %q", w.Status)
	}
	if !errors.Is(w.FailureCause, ErrUnauthenticated) {
		t.Errorf("expected failure cause recorded, got %v", w.FailureCause)
	}
	if w.Draft.Age != "34" {
		t.Errorf("draft lost on failure")
	}
	if err := w.CanSubmit(); err != nil {
		t.Errorf("expected retry allowed after failure, got %v", err)
	}
}

func TestWizard_MarkSubmittedClearsFailureCause(t *testing.T) {
	w := NewWizard()
	for w.Step != StepHealth {
		_ = w.Next()
	}
	w.MarkFailed(ErrUnauthenticated)
	w.MarkSubmitted()

	if w.FailureCause != nil {
		t.Errorf("expected failure cause cleared, got %v", w.FailureCause)
	}
}

func TestWizard_Progress(t *testing.T) {
	w := NewWizard()
	if w.Progress() != 25 {
		t.Errorf("expected 25%% at step 1, got %d", w.Progress())
	}
	for w.Step != StepHealth {
		_ = w.Next()
	}
	if w.Progress() != 100 {
		t.Errorf("expected 100%% at the last step, got %d", w.Progress())
	}
}

func TestStepFields_Disjoint(t *testing.T) {
	seen := make(map[string]Step)
	for s := StepPersonal; s <= StepHealth; s++ {
		for _, f := range StepFields(s) {
			if prev, dup := seen[f]; dup {
				t.Errorf("field %q owned by steps %d and %d", f, prev, s)
			}
			seen[f] = s
		}
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 draft fields across steps, got %d", len(seen))
	}
}
