// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docuflow/idextract/db/ent/schema"
	"github.com/docuflow/idextract/gen/ent/document"
	entfield "github.com/docuflow/idextract/gen/ent/field"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescOriginalFilename is the schema descriptor for original_filename field.
	documentDescOriginalFilename := documentFields[1].Descriptor()
	// document.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	document.OriginalFilenameValidator = documentDescOriginalFilename.Validators[0].(func(string) error)
	// documentDescStoredFileReference is the schema descriptor for stored_file_reference field.
	documentDescStoredFileReference := documentFields[2].Descriptor()
	// document.StoredFileReferenceValidator is a validator for the "stored_file_reference" field. It is called by the builders before save.
	document.StoredFileReferenceValidator = documentDescStoredFileReference.Validators[0].(func(string) error)
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[3].Descriptor()
	// document.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	document.DocumentTypeValidator = func() func(string) error {
		validators := documentDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescClassificationConfidence is the schema descriptor for classification_confidence field.
	documentDescClassificationConfidence := documentFields[4].Descriptor()
	// document.ClassificationConfidenceValidator is a validator for the "classification_confidence" field. It is called by the builders before save.
	document.ClassificationConfidenceValidator = func() func(float32) error {
		validators := documentDescClassificationConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(classification_confidence float32) error {
			for _, fn := range fns {
				if err := fn(classification_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[5].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[6].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	entfieldFields := schema.Field{}.Fields()
	_ = entfieldFields
	// entfieldDescFieldName is the schema descriptor for field_name field.
	entfieldDescFieldName := entfieldFields[2].Descriptor()
	// entfield.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	entfield.FieldNameValidator = entfieldDescFieldName.Validators[0].(func(string) error)
	// entfieldDescCorrected is the schema descriptor for corrected field.
	entfieldDescCorrected := entfieldFields[5].Descriptor()
	// entfield.DefaultCorrected holds the default value on creation for the corrected field.
	entfield.DefaultCorrected = entfieldDescCorrected.Default.(bool)
	// entfieldDescConfidence is the schema descriptor for confidence field.
	entfieldDescConfidence := entfieldFields[6].Descriptor()
	// entfield.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	entfield.ConfidenceValidator = func() func(float32) error {
		validators := entfieldDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entfieldDescID is the schema descriptor for id field.
	entfieldDescID := entfieldFields[0].Descriptor()
	// entfield.DefaultID holds the default value on creation for the id field.
	entfield.DefaultID = entfieldDescID.Default.(func() uuid.UUID)
}
