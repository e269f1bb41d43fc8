package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/idextract/constants"
)

// Document represents one processed upload for data transfer between layers.
type Document struct {
	ID               uuid.UUID              `json:"id"`
	OriginalFilename string                 `json:"original_filename"`
	StoredFileRef    string                 `json:"stored_file_ref"`
	DocumentType     constants.DocumentType `json:"document_type"`
	Confidence       float32                `json:"confidence"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	Fields           []*Field               `json:"fields"`
}

// RequiresReview reports whether any field still needs human attention. This
// is derived, never stored.
func (d *Document) RequiresReview() bool {
	for _, f := range d.Fields {
		if f.NeedsReview() {
			return true
		}
	}
	return false
}

// FieldByName returns the named field, or nil.
func (d *Document) FieldByName(name string) *Field {
	for _, f := range d.Fields {
		if f.FieldName == name {
			return f
		}
	}
	return nil
}

// Field represents one named, extracted, possibly-corrected data point.
type Field struct {
	ID             uuid.UUID `json:"id"`
	DocumentID     uuid.UUID `json:"document_id"`
	FieldName      string    `json:"field_name"`
	OriginalValue  string    `json:"original_value"`
	CorrectedValue *string   `json:"corrected_value,omitempty"`
	Corrected      bool      `json:"corrected"`
	Confidence     float32   `json:"confidence"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
}

// EffectiveValue is the corrected value if present, else the original.
func (f *Field) EffectiveValue() string {
	if f.Corrected && f.CorrectedValue != nil {
		return *f.CorrectedValue
	}
	return f.OriginalValue
}

// NeedsReview reports whether the field should be surfaced for correction.
func (f *Field) NeedsReview() bool {
	if f.Corrected {
		return false
	}
	return f.OriginalValue == constants.NotFound || f.ErrorMessage != nil ||
		f.Confidence < constants.ReviewConfidenceThreshold
}
