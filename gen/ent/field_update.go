// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuflow/idextract/gen/ent/document"
	entfield "github.com/docuflow/idextract/gen/ent/field"
	"github.com/docuflow/idextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// FieldUpdate is the builder for updating Field entities.
type FieldUpdate struct {
	config
	hooks    []Hook
	mutation *FieldMutation
}

// Where appends a list predicates to the FieldUpdate builder.
func (_u *FieldUpdate) Where(ps ...predicate.Field) *FieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *FieldUpdate) SetDocumentID(v uuid.UUID) *FieldUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableDocumentID(v *uuid.UUID) *FieldUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *FieldUpdate) SetFieldName(v string) *FieldUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableFieldName(v *string) *FieldUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetOriginalValue sets the "original_value" field.
func (_u *FieldUpdate) SetOriginalValue(v string) *FieldUpdate {
	_u.mutation.SetOriginalValue(v)
	return _u
}

// SetNillableOriginalValue sets the "original_value" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableOriginalValue(v *string) *FieldUpdate {
	if v != nil {
		_u.SetOriginalValue(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *FieldUpdate) SetCorrectedValue(v string) *FieldUpdate {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableCorrectedValue(v *string) *FieldUpdate {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (_u *FieldUpdate) ClearCorrectedValue() *FieldUpdate {
	_u.mutation.ClearCorrectedValue()
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *FieldUpdate) SetCorrected(v bool) *FieldUpdate {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableCorrected(v *bool) *FieldUpdate {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FieldUpdate) SetConfidence(v float32) *FieldUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableConfidence(v *float32) *FieldUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FieldUpdate) AddConfidence(v float32) *FieldUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FieldUpdate) SetErrorMessage(v string) *FieldUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableErrorMessage(v *string) *FieldUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FieldUpdate) ClearErrorMessage() *FieldUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *FieldUpdate) SetDocument(v *Document) *FieldUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FieldMutation object of the builder.
func (_u *FieldUpdate) Mutation() *FieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *FieldUpdate) ClearDocument() *FieldUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := entfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "Field.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := entfield.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Field.confidence": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Field.document"`)
	}
	return nil
}

func (_u *FieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entfield.Table, entfield.Columns, sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(entfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalValue(); ok {
		_spec.SetField(entfield.FieldOriginalValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(entfield.FieldCorrectedValue, field.TypeString, value)
	}
	if _u.mutation.CorrectedValueCleared() {
		_spec.ClearField(entfield.FieldCorrectedValue, field.TypeString)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(entfield.FieldCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(entfield.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(entfield.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfield.DocumentTable,
			Columns: []string{entfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfield.DocumentTable,
			Columns: []string{entfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldUpdateOne is the builder for updating a single Field entity.
type FieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *FieldUpdateOne) SetDocumentID(v uuid.UUID) *FieldUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableDocumentID(v *uuid.UUID) *FieldUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *FieldUpdateOne) SetFieldName(v string) *FieldUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableFieldName(v *string) *FieldUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetOriginalValue sets the "original_value" field.
func (_u *FieldUpdateOne) SetOriginalValue(v string) *FieldUpdateOne {
	_u.mutation.SetOriginalValue(v)
	return _u
}

// SetNillableOriginalValue sets the "original_value" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableOriginalValue(v *string) *FieldUpdateOne {
	if v != nil {
		_u.SetOriginalValue(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *FieldUpdateOne) SetCorrectedValue(v string) *FieldUpdateOne {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableCorrectedValue(v *string) *FieldUpdateOne {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (_u *FieldUpdateOne) ClearCorrectedValue() *FieldUpdateOne {
	_u.mutation.ClearCorrectedValue()
	return _u
}

// SetCorrected sets the "corrected" field.
func (_u *FieldUpdateOne) SetCorrected(v bool) *FieldUpdateOne {
	_u.mutation.SetCorrected(v)
	return _u
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableCorrected(v *bool) *FieldUpdateOne {
	if v != nil {
		_u.SetCorrected(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FieldUpdateOne) SetConfidence(v float32) *FieldUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableConfidence(v *float32) *FieldUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FieldUpdateOne) AddConfidence(v float32) *FieldUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FieldUpdateOne) SetErrorMessage(v string) *FieldUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableErrorMessage(v *string) *FieldUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FieldUpdateOne) ClearErrorMessage() *FieldUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *FieldUpdateOne) SetDocument(v *Document) *FieldUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FieldMutation object of the builder.
func (_u *FieldUpdateOne) Mutation() *FieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *FieldUpdateOne) ClearDocument() *FieldUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the FieldUpdate builder.
func (_u *FieldUpdateOne) Where(ps ...predicate.Field) *FieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldUpdateOne) Select(field string, fields ...string) *FieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Field entity.
func (_u *FieldUpdateOne) Save(ctx context.Context) (*Field, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldUpdateOne) SaveX(ctx context.Context) *Field {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := entfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "Field.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := entfield.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Field.confidence": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Field.document"`)
	}
	return nil
}

func (_u *FieldUpdateOne) sqlSave(ctx context.Context) (_node *Field, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entfield.Table, entfield.Columns, sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Field.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entfield.FieldID)
		for _, f := range fields {
			if !entfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entfield.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(entfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalValue(); ok {
		_spec.SetField(entfield.FieldOriginalValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(entfield.FieldCorrectedValue, field.TypeString, value)
	}
	if _u.mutation.CorrectedValueCleared() {
		_spec.ClearField(entfield.FieldCorrectedValue, field.TypeString)
	}
	if value, ok := _u.mutation.Corrected(); ok {
		_spec.SetField(entfield.FieldCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(entfield.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(entfield.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfield.DocumentTable,
			Columns: []string{entfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entfield.DocumentTable,
			Columns: []string{entfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Field{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
