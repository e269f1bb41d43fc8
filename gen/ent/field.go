// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docuflow/idextract/gen/ent/document"
	entfield "github.com/docuflow/idextract/gen/ent/field"
	"github.com/google/uuid"
)

// Field is the model entity for the Field schema.
type Field struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// OriginalValue holds the value of the "original_value" field.
	OriginalValue string `json:"original_value,omitempty"`
	// CorrectedValue holds the value of the "corrected_value" field.
	CorrectedValue *string `json:"corrected_value,omitempty"`
	// Corrected holds the value of the "corrected" field.
	Corrected bool `json:"corrected,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FieldQuery when eager-loading is set.
	Edges        FieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FieldEdges holds the relations/edges for other nodes in the graph.
type FieldEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Field) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entfield.FieldCorrected:
			values[i] = new(sql.NullBool)
		case entfield.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case entfield.FieldFieldName, entfield.FieldOriginalValue, entfield.FieldCorrectedValue, entfield.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case entfield.FieldID, entfield.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Field fields.
func (_m *Field) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entfield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case entfield.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case entfield.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case entfield.FieldOriginalValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_value", values[i])
			} else if value.Valid {
				_m.OriginalValue = value.String
			}
		case entfield.FieldCorrectedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_value", values[i])
			} else if value.Valid {
				_m.CorrectedValue = new(string)
				*_m.CorrectedValue = value.String
			}
		case entfield.FieldCorrected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field corrected", values[i])
			} else if value.Valid {
				_m.Corrected = value.Bool
			}
		case entfield.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case entfield.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Field.
// This includes values selected through modifiers, order, etc.
func (_m *Field) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the Field entity.
func (_m *Field) QueryDocument() *DocumentQuery {
	return NewFieldClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this Field.
// Note that you need to call Field.Unwrap() before calling this method if this Field
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Field) Update() *FieldUpdateOne {
	return NewFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Field entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Field) Unwrap() *Field {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Field is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Field) String() string {
	var builder strings.Builder
	builder.WriteString("Field(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("original_value=")
	builder.WriteString(_m.OriginalValue)
	builder.WriteString(", ")
	if v := _m.CorrectedValue; v != nil {
		builder.WriteString("corrected_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.Corrected))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Fields is a parsable slice of Field.
type Fields []*Field
