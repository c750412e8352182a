package domain

import "errors"

// Step identifies one of the four sequential intake screens.
type Step int

const (
	StepPersonal  Step = iota + 1 // age, gender
	StepFinancial                 // income, savings, dependents
	StepRisk                      // riskTolerance, goals
	StepHealth                    // healthStatus
)

const firstStep, lastStep = StepPersonal, StepHealth

// WizardStatus is the lifecycle state of an intake attempt.
type WizardStatus string

const (
	WizardInProgress WizardStatus = "in_progress"
	WizardSubmitted  WizardStatus = "submitted"
	WizardFailed     WizardStatus = "failed"
)

var ErrWizardStepBounds = errors.New("no such wizard step")
var ErrWizardNotOnFinalStep = errors.New("submit only allowed from the final step")
var ErrWizardAlreadySubmitted = errors.New("wizard already submitted")

// stepFields maps each step to the draft fields it owns. The sets are
// disjoint; backward navigation never clears any of them.
var stepFields = map[Step][]string{
	StepPersonal:  {"age", "gender"},
	StepFinancial: {"income", "savings", "dependents"},
	StepRisk:      {"riskTolerance", "goals"},
	StepHealth:    {"healthStatus"},
}

// StepFields returns the draft field names owned by a step.
func StepFields(s Step) []string {
	return stepFields[s]
}

// Wizard is the intake state machine. Next and Previous are pure transitions
// over the step counter; entered values live in Draft and survive every
// transition, including failed submits. Progression is deliberately not gated
// on field completeness: only a final Submit validates the draft.
type Wizard struct {
	Step   Step
	Status WizardStatus
	Draft  ProfileDraft

	// FailureCause records why the last submit attempt failed. Cleared on
	// the next attempt; never cleared by navigation.
	FailureCause error
}

// NewWizard starts an intake at the first step with an empty draft.
func NewWizard() *Wizard {
	return &Wizard{Step: firstStep, Status: WizardInProgress}
}

// Next advances to the following step. Allowed from any step but the last,
// regardless of which fields have been filled in.
func (w *Wizard) Next() error {
	if w.Step >= lastStep {
		return ErrWizardStepBounds
	}
	w.Step++
	return nil
}

// Previous returns to the prior step without touching the draft.
func (w *Wizard) Previous() error {
	if w.Step <= firstStep {
		return ErrWizardStepBounds
	}
	w.Step--
	return nil
}

// CanSubmit reports whether a Submit may be fired: the wizard must sit on the
// final step and not have already completed. A failed attempt may retry.
func (w *Wizard) CanSubmit() error {
	if w.Status == WizardSubmitted {
		return ErrWizardAlreadySubmitted
	}
	if w.Step != lastStep {
		return ErrWizardNotOnFinalStep
	}
	return nil
}

// MarkSubmitted records a successful submit.
func (w *Wizard) MarkSubmitted() {
	w.Status = WizardSubmitted
	w.FailureCause = nil
}

// MarkFailed records a terminal failure for this attempt. The draft is kept
// so the user can retry without re-entering anything.
func (w *Wizard) MarkFailed(cause error) {
	w.Status = WizardFailed
	w.FailureCause = cause
}

// Progress returns intake completion as a percentage of steps visited.
func (w *Wizard) Progress() int {
	return int(w.Step) * 100 / int(lastStep)
}
