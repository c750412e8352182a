package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

const collectionInsuranceData = "insurance_data"

// InsuranceDataRepository is read-only: rows are produced by the external
// document analysis pipeline.
type InsuranceDataRepository struct {
	col *mongo.Collection
}

func NewInsuranceDataRepository(db *mongo.Database) *InsuranceDataRepository {
	return &InsuranceDataRepository{col: db.Collection(collectionInsuranceData)}
}

type insuranceDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID    string             `bson:"user_id"`
	Provider   string             `bson:"provider"`
	Coverage   float64            `bson:"coverage"`
	Premium    float64            `bson:"premium"`
	Deductible float64            `bson:"deductible"`
	Duration   int                `bson:"duration"`
	UploadedAt time.Time          `bson:"uploaded_at"`
}

func (r *InsuranceDataRepository) List(ctx context.Context, ownerID string) ([]*domain.InsuranceData, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []*domain.InsuranceData
	for cursor.Next(ctx) {
		var d insuranceDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, err
		}
		rows = append(rows, &domain.InsuranceData{
			ID:         d.ID.Hex(),
			OwnerID:    d.OwnerID,
			Provider:   d.Provider,
			Coverage:   d.Coverage,
			Premium:    d.Premium,
			Deductible: d.Deductible,
			Duration:   d.Duration,
			UploadedAt: d.UploadedAt,
		})
	}
	return rows, cursor.Err()
}
