package ports

import (
	"context"
	"io"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// DocumentRepository stores uploaded document metadata.
type DocumentRepository interface {
	Insert(ctx context.Context, doc *domain.UploadedDocument) error

	// List returns the owner's documents, newest first.
	List(ctx context.Context, ownerID string) ([]*domain.UploadedDocument, error)
}

// BlobStore holds the document bytes behind an opaque storage reference.
type BlobStore interface {
	Put(ctx context.Context, ownerID, name string, r io.Reader) (ref string, err error)
}
