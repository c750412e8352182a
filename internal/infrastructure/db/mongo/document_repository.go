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

const collectionDocuments = "uploaded_documents"

type DocumentRepository struct {
	col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{col: db.Collection(collectionDocuments)}
}

type documentDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID    string             `bson:"user_id"`
	Name       string             `bson:"name"`
	SizeBytes  int64              `bson:"size_bytes"`
	StorageRef string             `bson:"storage_ref"`
	UploadedAt time.Time          `bson:"uploaded_at"`
}

func (r *DocumentRepository) Insert(ctx context.Context, doc *domain.UploadedDocument) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, documentDoc{
		OwnerID:    doc.OwnerID,
		Name:       doc.Name,
		SizeBytes:  doc.SizeBytes,
		StorageRef: doc.StorageRef,
		UploadedAt: doc.UploadedAt.UTC(),
	})
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid.Hex()
	}
	return nil
}

// List returns the owner's documents, newest first.
func (r *DocumentRepository) List(ctx context.Context, ownerID string) ([]*domain.UploadedDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*domain.UploadedDocument
	for cursor.Next(ctx) {
		var d documentDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, err
		}
		docs = append(docs, &domain.UploadedDocument{
			ID:         d.ID.Hex(),
			OwnerID:    d.OwnerID,
			Name:       d.Name,
			SizeBytes:  d.SizeBytes,
			StorageRef: d.StorageRef,
			UploadedAt: d.UploadedAt,
		})
	}
	return docs, cursor.Err()
}
