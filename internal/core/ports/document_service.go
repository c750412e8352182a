package ports

import (
	"context"
	"io"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
)

// UploadDocumentInput carries the file metadata and byte stream of one upload.
type UploadDocumentInput struct {
	Name      string
	SizeBytes int64
	Body      io.Reader
}

// DocumentService enforces the upload contract (size cap, extension
// whitelist) before anything touches storage.
type DocumentService interface {
	Upload(ctx context.Context, ownerID string, in UploadDocumentInput) (*domain.UploadedDocument, error)
	List(ctx context.Context, ownerID string) ([]*domain.UploadedDocument, error)
}
