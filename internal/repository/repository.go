package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/entity"
)

// CreateDocumentRequest wraps parameters for creating a document with its
// complete field set.
type CreateDocumentRequest struct {
	OriginalFilename string
	StoredFileRef    string
	DocumentType     constants.DocumentType
	Confidence       float32
	Fields           []entity.FinalField
}

// ListOptions pages the document listing. Zero Limit means no limit.
type ListOptions struct {
	Limit  int
	Offset int
}

// DocumentRepository persists the document aggregate. A document is created
// atomically with its full field set; after that, fields are only ever
// corrected, never added or removed, until the document is deleted as a
// whole.
type DocumentRepository interface {
	// Create stores the document and all its fields in one transaction.
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	// Get returns the document with its fields, or ErrDocumentNotFound.
	Get(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// List returns documents newest first (created_at desc, id desc as the
	// tie-break), fields included.
	List(ctx context.Context, opts ListOptions) ([]*entity.Document, error)
	// ApplyCorrections sets corrected_value on each named field. The call is
	// all-or-nothing: an unknown field name fails the whole batch with
	// ErrFieldNotFound and leaves every field untouched.
	ApplyCorrections(ctx context.Context, id uuid.UUID, corrections map[string]string) (*entity.Document, error)
	// UpdateDocumentType overrides a misclassified type. Fields are left as
	// extracted; the caller corrects values separately if needed.
	UpdateDocumentType(ctx context.Context, id uuid.UUID, docType constants.DocumentType) (*entity.Document, error)
	// Delete removes the document and all its fields.
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteAll removes every document and returns how many were deleted.
	// Deleting from an empty store succeeds with 0.
	DeleteAll(ctx context.Context) (int, error)
}
