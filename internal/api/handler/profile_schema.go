package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// profileSubmitRequest carries the wizard draft exactly as entered: every
// field is the raw string from the form. Parsing, range checks, and the
// "4+" collapse happen in the domain validator, not here.
type profileSubmitRequest struct {
	Age           string `json:"age"`
	Gender        string `json:"gender"`
	Income        string `json:"income"`
	Savings       string `json:"savings"`
	Dependents    string `json:"dependents"`
	RiskTolerance string `json:"risk_tolerance"`
	Goals         string `json:"goals"`
	HealthStatus  string `json:"health_status"`
}

// profileResponse is the normalized stored profile.
type profileResponse struct {
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	Income        float64   `json:"income"`
	Savings       float64   `json:"savings"`
	Dependents    int       `json:"dependents"`
	RiskTolerance int       `json:"risk_tolerance"`
	Goals         string    `json:"goals,omitempty"`
	HealthStatus  string    `json:"health_status"`
	CreatedAt     time.Time `json:"created_at"`
}
