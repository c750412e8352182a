package domain

import (
	"errors"
	"time"
)

var ErrReportNotFound = errors.New("report not found")

// Report is an immutable summary generated from one or more simulation
// results. JSONData is the structured payload; PDFRef points at the rendered
// artifact in external storage.
type Report struct {
	ReportID  string    `json:"report_id" bson:"_id,omitempty"`
	OwnerID   string    `json:"owner_id" bson:"user_id"`
	JSONData  []byte    `json:"json_data" bson:"json_data"`
	PDFRef    string    `json:"pdf_url" bson:"pdf_url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// InsuranceData is parsed metadata of an uploaded policy document. Rows are
// populated by an external analysis pipeline; this service only reads them.
type InsuranceData struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	OwnerID    string    `json:"owner_id" bson:"user_id"`
	Provider   string    `json:"provider" bson:"provider"`
	Coverage   float64   `json:"coverage" bson:"coverage"`
	Premium    float64   `json:"premium" bson:"premium"`
	Deductible float64   `json:"deductible" bson:"deductible"`
	Duration   int       `json:"duration" bson:"duration"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploaded_at"`
}
