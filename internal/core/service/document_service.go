package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coverwise/risk-profile-api/internal/core/domain"
	"github.com/coverwise/risk-profile-api/internal/core/ports"
)

type documentService struct {
	docs     ports.DocumentRepository
	blobs    ports.BlobStore
	maxBytes int64
	log      zerolog.Logger
}

// NewDocumentService returns a DocumentService enforcing maxBytes per upload.
func NewDocumentService(
	docs ports.DocumentRepository,
	blobs ports.BlobStore,
	maxBytes int64,
	log zerolog.Logger,
) ports.DocumentService {
	return &documentService{docs: docs, blobs: blobs, maxBytes: maxBytes, log: log}
}

// Upload checks the declared metadata before a single byte is written, so a
// rejected file can never show up in a later listing.
func (s *documentService) Upload(ctx context.Context, ownerID string, in ports.UploadDocumentInput) (*domain.UploadedDocument, error) {
	if err := domain.CheckDocumentMeta(in.Name, in.SizeBytes, s.maxBytes); err != nil {
		s.log.Debug().Str("owner_id", ownerID).Str("name", in.Name).Int64("size", in.SizeBytes).Err(err).Msg("upload rejected")
		return nil, err
	}

	ref, err := s.blobs.Put(ctx, ownerID, in.Name, in.Body)
	if err != nil {
		return nil, fmt.Errorf("upload document: store bytes: %w", err)
	}

	doc := &domain.UploadedDocument{
		OwnerID:    ownerID,
		Name:       in.Name,
		SizeBytes:  in.SizeBytes,
		StorageRef: ref,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.docs.Insert(ctx, doc); err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}

	s.log.Info().Str("owner_id", ownerID).Str("name", in.Name).Int64("size", in.SizeBytes).Msg("document uploaded")
	return doc, nil
}

func (s *documentService) List(ctx context.Context, ownerID string) ([]*domain.UploadedDocument, error) {
	return s.docs.List(ctx, ownerID)
}
