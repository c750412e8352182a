package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

const collectionProfiles = "user_profiles"

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

// Upsert replaces the whole profile row for the owner, or inserts it, as one
// atomic operation keyed on user_id. $setOnInsert keeps created_at from the
// first insert; every other field follows last-write-wins.
func (r *ProfileRepository) Upsert(ctx context.Context, ownerID string, p *domain.UserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": ownerID}
	update := bson.M{
		"$set": bson.M{
			"age":            p.Age,
			"gender":         string(p.Gender),
			"income":         p.Income,
			"savings":        p.Savings,
			"dependents":     p.Dependents,
			"risk_tolerance": p.RiskTolerance,
			"goals":          p.Goals,
			"health_status":  string(p.HealthStatus),
		},
		"$setOnInsert": bson.M{
			"user_id":    ownerID,
			"created_at": time.Now().UTC(),
		},
	}

	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Get retrieves the owner's profile.
func (r *ProfileRepository) Get(ctx context.Context, ownerID string) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.UserProfile
	err := r.col.FindOne(ctx, bson.M{"user_id": ownerID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// EnsureIndexes creates the unique owner index backing the upsert conflict target.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
