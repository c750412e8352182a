package domain

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

var ErrFileTooLarge = errors.New("file exceeds the maximum upload size")
var ErrUnsupportedType = errors.New("unsupported document type")
var ErrDocumentNotFound = errors.New("document not found")

// allowedExtensions is the document whitelist from the upload guidelines.
var allowedExtensions = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {},
}

// UploadedDocument is the metadata of a policy document whose bytes live in
// external storage behind an opaque reference.
type UploadedDocument struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	OwnerID    string    `json:"owner_id" bson:"user_id"`
	Name       string    `json:"name" bson:"name"`
	SizeBytes  int64     `json:"size_bytes" bson:"size_bytes"`
	StorageRef string    `json:"storage_ref" bson:"storage_ref"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploaded_at"`
}

// CheckDocumentMeta enforces the upload contract before any byte is stored:
// the declared size must not exceed maxBytes and the extension must be one of
// pdf, doc, docx (case-insensitive).
func CheckDocumentMeta(name string, sizeBytes, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrUnsupportedType
	}
	if maxBytes > 0 && sizeBytes > maxBytes {
		return ErrFileTooLarge
	}
	return nil
}
