package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

const collectionReports = "user_reports"

type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{col: db.Collection(collectionReports)}
}

type reportDoc struct {
	ReportID  string    `bson:"_id"`
	OwnerID   string    `bson:"user_id"`
	JSONData  []byte    `bson:"json_data"`
	PDFRef    string    `bson:"pdf_url"`
	CreatedAt time.Time `bson:"created_at"`
}

// Insert stores one report. Reports are immutable: there is no update path.
func (r *ReportRepository) Insert(ctx context.Context, report *domain.Report) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, reportDoc{
		ReportID:  report.ReportID,
		OwnerID:   report.OwnerID,
		JSONData:  report.JSONData,
		PDFRef:    report.PDFRef,
		CreatedAt: report.CreatedAt.UTC(),
	})
	return err
}

func (r *ReportRepository) List(ctx context.Context, ownerID string) ([]*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*domain.Report
	for cursor.Next(ctx) {
		var d reportDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, err
		}
		reports = append(reports, &domain.Report{
			ReportID:  d.ReportID,
			OwnerID:   d.OwnerID,
			JSONData:  d.JSONData,
			PDFRef:    d.PDFRef,
			CreatedAt: d.CreatedAt,
		})
	}
	return reports, cursor.Err()
}
