// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docuflow/idextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalFilename, v))
}

// StoredFileReference applies equality check predicate on the "stored_file_reference" field. It's identical to StoredFileReferenceEQ.
func StoredFileReference(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoredFileReference, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentType, v))
}

// ClassificationConfidence applies equality check predicate on the "classification_confidence" field. It's identical to ClassificationConfidenceEQ.
func ClassificationConfidence(v float32) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClassificationConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// StoredFileReferenceEQ applies the EQ predicate on the "stored_file_reference" field.
func StoredFileReferenceEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStoredFileReference, v))
}

// StoredFileReferenceNEQ applies the NEQ predicate on the "stored_file_reference" field.
func StoredFileReferenceNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStoredFileReference, v))
}

// StoredFileReferenceIn applies the In predicate on the "stored_file_reference" field.
func StoredFileReferenceIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStoredFileReference, vs...))
}

// StoredFileReferenceNotIn applies the NotIn predicate on the "stored_file_reference" field.
func StoredFileReferenceNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStoredFileReference, vs...))
}

// StoredFileReferenceGT applies the GT predicate on the "stored_file_reference" field.
func StoredFileReferenceGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStoredFileReference, v))
}

// StoredFileReferenceGTE applies the GTE predicate on the "stored_file_reference" field.
func StoredFileReferenceGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStoredFileReference, v))
}

// StoredFileReferenceLT applies the LT predicate on the "stored_file_reference" field.
func StoredFileReferenceLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStoredFileReference, v))
}

// StoredFileReferenceLTE applies the LTE predicate on the "stored_file_reference" field.
func StoredFileReferenceLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStoredFileReference, v))
}

// StoredFileReferenceContains applies the Contains predicate on the "stored_file_reference" field.
func StoredFileReferenceContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStoredFileReference, v))
}

// StoredFileReferenceHasPrefix applies the HasPrefix predicate on the "stored_file_reference" field.
func StoredFileReferenceHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStoredFileReference, v))
}

// StoredFileReferenceHasSuffix applies the HasSuffix predicate on the "stored_file_reference" field.
func StoredFileReferenceHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStoredFileReference, v))
}

// StoredFileReferenceEqualFold applies the EqualFold predicate on the "stored_file_reference" field.
func StoredFileReferenceEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStoredFileReference, v))
}

// StoredFileReferenceContainsFold applies the ContainsFold predicate on the "stored_file_reference" field.
func StoredFileReferenceContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStoredFileReference, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocumentType, v))
}

// ClassificationConfidenceEQ applies the EQ predicate on the "classification_confidence" field.
func ClassificationConfidenceEQ(v float32) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldClassificationConfidence, v))
}

// ClassificationConfidenceNEQ applies the NEQ predicate on the "classification_confidence" field.
func ClassificationConfidenceNEQ(v float32) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldClassificationConfidence, v))
}

// ClassificationConfidenceIn applies the In predicate on the "classification_confidence" field.
func ClassificationConfidenceIn(vs ...float32) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldClassificationConfidence, vs...))
}

// ClassificationConfidenceNotIn applies the NotIn predicate on the "classification_confidence" field.
func ClassificationConfidenceNotIn(vs ...float32) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldClassificationConfidence, vs...))
}

// ClassificationConfidenceGT applies the GT predicate on the "classification_confidence" field.
func ClassificationConfidenceGT(v float32) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldClassificationConfidence, v))
}

// ClassificationConfidenceGTE applies the GTE predicate on the "classification_confidence" field.
func ClassificationConfidenceGTE(v float32) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldClassificationConfidence, v))
}

// ClassificationConfidenceLT applies the LT predicate on the "classification_confidence" field.
func ClassificationConfidenceLT(v float32) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldClassificationConfidence, v))
}

// ClassificationConfidenceLTE applies the LTE predicate on the "classification_confidence" field.
func ClassificationConfidenceLTE(v float32) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldClassificationConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFields applies the HasEdge predicate on the "fields" edge.
func HasFields() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldsTable, FieldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldsWith applies the HasEdge predicate on the "fields" edge with a given conditions (other predicates).
func HasFieldsWith(preds ...predicate.Field) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newFieldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
