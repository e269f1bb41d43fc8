// Code generated by ent, DO NOT EDIT.

package entfield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docuflow/idextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldDocumentID, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldFieldName, v))
}

// OriginalValue applies equality check predicate on the "original_value" field. It's identical to OriginalValueEQ.
func OriginalValue(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldOriginalValue, v))
}

// CorrectedValue applies equality check predicate on the "corrected_value" field. It's identical to CorrectedValueEQ.
func CorrectedValue(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldCorrectedValue, v))
}

// Corrected applies equality check predicate on the "corrected" field. It's identical to CorrectedEQ.
func Corrected(v bool) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldCorrected, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldConfidence, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldErrorMessage, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldDocumentID, vs...))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.Field {
	return predicate.Field(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.Field {
	return predicate.Field(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.Field {
	return predicate.Field(sql.FieldContainsFold(FieldFieldName, v))
}

// OriginalValueEQ applies the EQ predicate on the "original_value" field.
func OriginalValueEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldOriginalValue, v))
}

// OriginalValueNEQ applies the NEQ predicate on the "original_value" field.
func OriginalValueNEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldOriginalValue, v))
}

// OriginalValueIn applies the In predicate on the "original_value" field.
func OriginalValueIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldOriginalValue, vs...))
}

// OriginalValueNotIn applies the NotIn predicate on the "original_value" field.
func OriginalValueNotIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldOriginalValue, vs...))
}

// OriginalValueGT applies the GT predicate on the "original_value" field.
func OriginalValueGT(v string) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldOriginalValue, v))
}

// OriginalValueGTE applies the GTE predicate on the "original_value" field.
func OriginalValueGTE(v string) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldOriginalValue, v))
}

// OriginalValueLT applies the LT predicate on the "original_value" field.
func OriginalValueLT(v string) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldOriginalValue, v))
}

// OriginalValueLTE applies the LTE predicate on the "original_value" field.
func OriginalValueLTE(v string) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldOriginalValue, v))
}

// OriginalValueContains applies the Contains predicate on the "original_value" field.
func OriginalValueContains(v string) predicate.Field {
	return predicate.Field(sql.FieldContains(FieldOriginalValue, v))
}

// OriginalValueHasPrefix applies the HasPrefix predicate on the "original_value" field.
func OriginalValueHasPrefix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasPrefix(FieldOriginalValue, v))
}

// OriginalValueHasSuffix applies the HasSuffix predicate on the "original_value" field.
func OriginalValueHasSuffix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasSuffix(FieldOriginalValue, v))
}

// OriginalValueEqualFold applies the EqualFold predicate on the "original_value" field.
func OriginalValueEqualFold(v string) predicate.Field {
	return predicate.Field(sql.FieldEqualFold(FieldOriginalValue, v))
}

// OriginalValueContainsFold applies the ContainsFold predicate on the "original_value" field.
func OriginalValueContainsFold(v string) predicate.Field {
	return predicate.Field(sql.FieldContainsFold(FieldOriginalValue, v))
}

// CorrectedValueEQ applies the EQ predicate on the "corrected_value" field.
func CorrectedValueEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldCorrectedValue, v))
}

// CorrectedValueNEQ applies the NEQ predicate on the "corrected_value" field.
func CorrectedValueNEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldCorrectedValue, v))
}

// CorrectedValueIn applies the In predicate on the "corrected_value" field.
func CorrectedValueIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldCorrectedValue, vs...))
}

// CorrectedValueNotIn applies the NotIn predicate on the "corrected_value" field.
func CorrectedValueNotIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldCorrectedValue, vs...))
}

// CorrectedValueGT applies the GT predicate on the "corrected_value" field.
func CorrectedValueGT(v string) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldCorrectedValue, v))
}

// CorrectedValueGTE applies the GTE predicate on the "corrected_value" field.
func CorrectedValueGTE(v string) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldCorrectedValue, v))
}

// CorrectedValueLT applies the LT predicate on the "corrected_value" field.
func CorrectedValueLT(v string) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldCorrectedValue, v))
}

// CorrectedValueLTE applies the LTE predicate on the "corrected_value" field.
func CorrectedValueLTE(v string) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldCorrectedValue, v))
}

// CorrectedValueContains applies the Contains predicate on the "corrected_value" field.
func CorrectedValueContains(v string) predicate.Field {
	return predicate.Field(sql.FieldContains(FieldCorrectedValue, v))
}

// CorrectedValueHasPrefix applies the HasPrefix predicate on the "corrected_value" field.
func CorrectedValueHasPrefix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasPrefix(FieldCorrectedValue, v))
}

// CorrectedValueHasSuffix applies the HasSuffix predicate on the "corrected_value" field.
func CorrectedValueHasSuffix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasSuffix(FieldCorrectedValue, v))
}

// CorrectedValueIsNil applies the IsNil predicate on the "corrected_value" field.
func CorrectedValueIsNil() predicate.Field {
	return predicate.Field(sql.FieldIsNull(FieldCorrectedValue))
}

// CorrectedValueNotNil applies the NotNil predicate on the "corrected_value" field.
func CorrectedValueNotNil() predicate.Field {
	return predicate.Field(sql.FieldNotNull(FieldCorrectedValue))
}

// CorrectedValueEqualFold applies the EqualFold predicate on the "corrected_value" field.
func CorrectedValueEqualFold(v string) predicate.Field {
	return predicate.Field(sql.FieldEqualFold(FieldCorrectedValue, v))
}

// CorrectedValueContainsFold applies the ContainsFold predicate on the "corrected_value" field.
func CorrectedValueContainsFold(v string) predicate.Field {
	return predicate.Field(sql.FieldContainsFold(FieldCorrectedValue, v))
}

// CorrectedEQ applies the EQ predicate on the "corrected" field.
func CorrectedEQ(v bool) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldCorrected, v))
}

// CorrectedNEQ applies the NEQ predicate on the "corrected" field.
func CorrectedNEQ(v bool) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldCorrected, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldConfidence, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Field {
	return predicate.Field(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Field {
	return predicate.Field(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Field {
	return predicate.Field(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Field {
	return predicate.Field(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Field {
	return predicate.Field(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Field {
	return predicate.Field(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Field {
	return predicate.Field(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Field) predicate.Field {
	return predicate.Field(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Field) predicate.Field {
	return predicate.Field(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Field) predicate.Field {
	return predicate.Field(sql.NotPredicates(p))
}
