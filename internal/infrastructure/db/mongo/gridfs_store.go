package mongo

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSStore keeps uploaded document bytes in a GridFS bucket. The returned
// reference is the hex file id; callers treat it as opaque.
type GridFSStore struct {
	bucket *gridfs.Bucket
}

func NewGridFSStore(db *mongo.Database) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("policy_documents"))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &GridFSStore{bucket: bucket}, nil
}

func (s *GridFSStore) Put(ctx context.Context, ownerID, name string, r io.Reader) (string, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"user_id": ownerID})

	stream, err := s.bucket.OpenUploadStream(name, opts)
	if err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}

	if _, err := io.Copy(stream, r); err != nil {
		_ = stream.Abort()
		return "", fmt.Errorf("gridfs upload: %w", err)
	}
	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}

	id, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("gridfs upload: unexpected file id type %T", stream.FileID)
	}
	return id.Hex(), nil
}
