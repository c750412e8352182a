package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Gender is the self-reported gender collected on the first wizard step.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

// HealthStatus is the self-reported health rating collected on the last step.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthVeryGood  HealthStatus = "very-good"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

var validGenders = map[Gender]struct{}{
	GenderMale: {}, GenderFemale: {}, GenderOther: {}, GenderPreferNotToSay: {},
}

var validHealthStatuses = map[HealthStatus]struct{}{
	HealthExcellent: {}, HealthVeryGood: {}, HealthGood: {}, HealthFair: {}, HealthPoor: {},
}

// dependentsCap is the value any "4 or more" answer collapses to. The loss of
// precision is intentional: the intake form never distinguishes counts above 4.
const dependentsCap = 4

var ErrProfileNotFound = errors.New("profile not found")
var ErrUnauthenticated = errors.New("not authenticated")

// FieldReason classifies why a single draft field failed validation.
type FieldReason string

const (
	ReasonMissing     FieldReason = "missing"
	ReasonOutOfRange  FieldReason = "out_of_range"
	ReasonInvalidEnum FieldReason = "invalid_enum"
)

// FieldError reports the first draft field that failed validation.
type FieldError struct {
	Field  string
	Reason FieldReason
	Value  string
}

func (e *FieldError) Error() string {
	if e.Reason == ReasonMissing {
		return fmt.Sprintf("field %s is required", e.Field)
	}
	return fmt.Sprintf("field %s: %s value %q", e.Field, e.Reason, e.Value)
}

// UserProfile is the normalized financial/demographic profile. Exactly one
// exists per owner; a re-submission replaces every field.
type UserProfile struct {
	OwnerID       string       `json:"owner_id" bson:"user_id"`
	Age           int          `json:"age" bson:"age"`
	Gender        Gender       `json:"gender" bson:"gender"`
	Income        float64      `json:"income" bson:"income"`
	Savings       float64      `json:"savings" bson:"savings"`
	Dependents    int          `json:"dependents" bson:"dependents"`
	RiskTolerance int          `json:"risk_tolerance" bson:"risk_tolerance"`
	Goals         string       `json:"goals,omitempty" bson:"goals,omitempty"`
	HealthStatus  HealthStatus `json:"health_status" bson:"health_status"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
}

// ProfileDraft carries the raw string values accumulated across the wizard
// steps, exactly as entered. Parsing and range checks happen only at submit.
type ProfileDraft struct {
	Age           string `json:"age"`
	Gender        string `json:"gender"`
	Income        string `json:"income"`
	Savings       string `json:"savings"`
	Dependents    string `json:"dependents"`
	RiskTolerance string `json:"risk_tolerance"`
	Goals         string `json:"goals"`
	HealthStatus  string `json:"health_status"`
}

// ProfileBounds holds the configurable upper limits on numeric profile fields.
// A zero MaxAmount disables the income/savings cap.
type ProfileBounds struct {
	MaxAge    int
	MaxAmount float64
}

// DefaultProfileBounds matches the deployed configuration defaults.
var DefaultProfileBounds = ProfileBounds{MaxAge: 120, MaxAmount: 0}

// ValidateDraft checks a completed draft and returns the normalized profile.
// Pure and deterministic: the first failing field (in wizard order) is
// reported as a *FieldError and nothing is persisted. Goals is the only
// optional field. The "4+" dependents answer collapses to the integer 4.
func ValidateDraft(d ProfileDraft, bounds ProfileBounds) (*UserProfile, error) {
	age, err := requireInt("age", d.Age)
	if err != nil {
		return nil, err
	}
	if age <= 0 || (bounds.MaxAge > 0 && age > bounds.MaxAge) {
		return nil, &FieldError{Field: "age", Reason: ReasonOutOfRange, Value: d.Age}
	}

	gender := Gender(strings.TrimSpace(d.Gender))
	if gender == "" {
		return nil, &FieldError{Field: "gender", Reason: ReasonMissing}
	}
	if _, ok := validGenders[gender]; !ok {
		return nil, &FieldError{Field: "gender", Reason: ReasonInvalidEnum, Value: d.Gender}
	}

	income, err := requireAmount("income", d.Income, bounds)
	if err != nil {
		return nil, err
	}
	savings, err := requireAmount("savings", d.Savings, bounds)
	if err != nil {
		return nil, err
	}

	dependents, err := parseDependents(d.Dependents)
	if err != nil {
		return nil, err
	}

	risk, err := requireInt("riskTolerance", d.RiskTolerance)
	if err != nil {
		return nil, err
	}
	if risk < 1 || risk > 10 {
		return nil, &FieldError{Field: "riskTolerance", Reason: ReasonOutOfRange, Value: d.RiskTolerance}
	}

	health := HealthStatus(strings.TrimSpace(d.HealthStatus))
	if health == "" {
		return nil, &FieldError{Field: "healthStatus", Reason: ReasonMissing}
	}
	if _, ok := validHealthStatuses[health]; !ok {
		return nil, &FieldError{Field: "healthStatus", Reason: ReasonInvalidEnum, Value: d.HealthStatus}
	}

	return &UserProfile{
		Age:           age,
		Gender:        gender,
		Income:        income,
		Savings:       savings,
		Dependents:    dependents,
		RiskTolerance: risk,
		Goals:         strings.TrimSpace(d.Goals),
		HealthStatus:  health,
	}, nil
}

func requireInt(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: field, Reason: ReasonMissing}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: field, Reason: ReasonOutOfRange, Value: raw}
	}
	return n, nil
}

func requireAmount(field, raw string, bounds ProfileBounds) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: field, Reason: ReasonMissing}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, &FieldError{Field: field, Reason: ReasonOutOfRange, Value: raw}
	}
	if bounds.MaxAmount > 0 && v > bounds.MaxAmount {
		return 0, &FieldError{Field: field, Reason: ReasonOutOfRange, Value: raw}
	}
	return v, nil
}

// parseDependents accepts "0".."N" or the literal "4+", which the intake form
// offers as its highest choice. Any count of four or more stores as exactly 4.
func parseDependents(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: "dependents", Reason: ReasonMissing}
	}
	if raw == "4+" {
		return dependentsCap, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &FieldError{Field: "dependents", Reason: ReasonOutOfRange, Value: raw}
	}
	if n >= dependentsCap {
		return dependentsCap, nil
	}
	return n, nil
}
