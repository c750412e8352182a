package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every index the repositories rely on. Called once at
// startup, before the server accepts traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewProfileRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("profile indexes: %w", err)
	}
	if err := NewSimulationRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("simulation indexes: %w", err)
	}
	if err := NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("auth indexes: %w", err)
	}
	return nil
}
