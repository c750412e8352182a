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

const collectionSimulations = "simulation_results"

type SimulationRepository struct {
	col *mongo.Collection
}

func NewSimulationRepository(db *mongo.Database) *SimulationRepository {
	return &SimulationRepository{col: db.Collection(collectionSimulations)}
}

type simulationDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID        string             `bson:"user_id"`
	Strategy       string             `bson:"strategy"`
	AvgCost        float64            `bson:"avg_cost"`
	BestCase       float64            `bson:"best_case"`
	WorstCase      float64            `bson:"worst_case"`
	Recommendation string             `bson:"recommendation"`
	CreatedAt      time.Time          `bson:"created_at"`
}

// Save appends one result. There is deliberately no update or delete path.
func (r *SimulationRepository) Save(ctx context.Context, result *domain.SimulationResult) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := simulationDoc{
		OwnerID:        result.OwnerID,
		Strategy:       result.Strategy,
		AvgCost:        result.AvgCost,
		BestCase:       result.BestCase,
		WorstCase:      result.WorstCase,
		Recommendation: result.Recommendation,
		CreatedAt:      result.CreatedAt.UTC(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid.Hex()
	}
	return nil
}

// List returns at most limit results for the owner, newest first.
func (r *SimulationRepository) List(ctx context.Context, ownerID string, limit int) ([]*domain.SimulationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*domain.SimulationResult
	for cursor.Next(ctx) {
		var doc simulationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, &domain.SimulationResult{
			ID:             doc.ID.Hex(),
			OwnerID:        doc.OwnerID,
			Strategy:       doc.Strategy,
			AvgCost:        doc.AvgCost,
			BestCase:       doc.BestCase,
			WorstCase:      doc.WorstCase,
			Recommendation: doc.Recommendation,
			CreatedAt:      doc.CreatedAt,
		})
	}
	return results, cursor.Err()
}

// EnsureIndexes creates the owner + recency index used by List.
func (r *SimulationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
