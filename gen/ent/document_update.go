// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuflow/idextract/gen/ent/document"
	entfield "github.com/docuflow/idextract/gen/ent/field"
	"github.com/docuflow/idextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DocumentUpdate) SetOriginalFilename(v string) *DocumentUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOriginalFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStoredFileReference sets the "stored_file_reference" field.
func (_u *DocumentUpdate) SetStoredFileReference(v string) *DocumentUpdate {
	_u.mutation.SetStoredFileReference(v)
	return _u
}

// SetNillableStoredFileReference sets the "stored_file_reference" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStoredFileReference(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStoredFileReference(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdate) SetDocumentType(v string) *DocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (_u *DocumentUpdate) SetClassificationConfidence(v float32) *DocumentUpdate {
	_u.mutation.ResetClassificationConfidence()
	_u.mutation.SetClassificationConfidence(v)
	return _u
}

// SetNillableClassificationConfidence sets the "classification_confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableClassificationConfidence(v *float32) *DocumentUpdate {
	if v != nil {
		_u.SetClassificationConfidence(*v)
	}
	return _u
}

// AddClassificationConfidence adds value to the "classification_confidence" field.
func (_u *DocumentUpdate) AddClassificationConfidence(v float32) *DocumentUpdate {
	_u.mutation.AddClassificationConfidence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFieldIDs adds the "fields" edge to the Field entity by IDs.
func (_u *DocumentUpdate) AddFieldIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the Field entity.
func (_u *DocumentUpdate) AddFields(v ...*Field) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearFields clears all "fields" edges to the Field entity.
func (_u *DocumentUpdate) ClearFields() *DocumentUpdate {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to Field entities by IDs.
func (_u *DocumentUpdate) RemoveFieldIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to Field entities.
func (_u *DocumentUpdate) RemoveFields(v ...*Field) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredFileReference(); ok {
		if err := document.StoredFileReferenceValidator(v); err != nil {
			return &ValidationError{Name: "stored_file_reference", err: fmt.Errorf(`ent: validator failed for field "Document.stored_file_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClassificationConfidence(); ok {
		if err := document.ClassificationConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "classification_confidence", err: fmt.Errorf(`ent: validator failed for field "Document.classification_confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredFileReference(); ok {
		_spec.SetField(document.FieldStoredFileReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassificationConfidence(); ok {
		_spec.SetField(document.FieldClassificationConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedClassificationConfidence(); ok {
		_spec.AddField(document.FieldClassificationConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DocumentUpdateOne) SetOriginalFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOriginalFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStoredFileReference sets the "stored_file_reference" field.
func (_u *DocumentUpdateOne) SetStoredFileReference(v string) *DocumentUpdateOne {
	_u.mutation.SetStoredFileReference(v)
	return _u
}

// SetNillableStoredFileReference sets the "stored_file_reference" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStoredFileReference(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStoredFileReference(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdateOne) SetDocumentType(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (_u *DocumentUpdateOne) SetClassificationConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.ResetClassificationConfidence()
	_u.mutation.SetClassificationConfidence(v)
	return _u
}

// SetNillableClassificationConfidence sets the "classification_confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableClassificationConfidence(v *float32) *DocumentUpdateOne {
	if v != nil {
		_u.SetClassificationConfidence(*v)
	}
	return _u
}

// AddClassificationConfidence adds value to the "classification_confidence" field.
func (_u *DocumentUpdateOne) AddClassificationConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.AddClassificationConfidence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFieldIDs adds the "fields" edge to the Field entity by IDs.
func (_u *DocumentUpdateOne) AddFieldIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the Field entity.
func (_u *DocumentUpdateOne) AddFields(v ...*Field) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearFields clears all "fields" edges to the Field entity.
func (_u *DocumentUpdateOne) ClearFields() *DocumentUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to Field entities by IDs.
func (_u *DocumentUpdateOne) RemoveFieldIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to Field entities.
func (_u *DocumentUpdateOne) RemoveFields(v ...*Field) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoredFileReference(); ok {
		if err := document.StoredFileReferenceValidator(v); err != nil {
			return &ValidationError{Name: "stored_file_reference", err: fmt.Errorf(`ent: validator failed for field "Document.stored_file_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClassificationConfidence(); ok {
		if err := document.ClassificationConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "classification_confidence", err: fmt.Errorf(`ent: validator failed for field "Document.classification_confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoredFileReference(); ok {
		_spec.SetField(document.FieldStoredFileReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassificationConfidence(); ok {
		_spec.SetField(document.FieldClassificationConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedClassificationConfidence(); ok {
		_spec.AddField(document.FieldClassificationConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
