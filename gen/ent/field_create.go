// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuflow/idextract/gen/ent/document"
	entfield "github.com/docuflow/idextract/gen/ent/field"
	"github.com/google/uuid"
)

// FieldCreate is the builder for creating a Field entity.
type FieldCreate struct {
	config
	mutation *FieldMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *FieldCreate) SetDocumentID(v uuid.UUID) *FieldCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *FieldCreate) SetFieldName(v string) *FieldCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetOriginalValue sets the "original_value" field.
func (_c *FieldCreate) SetOriginalValue(v string) *FieldCreate {
	_c.mutation.SetOriginalValue(v)
	return _c
}

// SetCorrectedValue sets the "corrected_value" field.
func (_c *FieldCreate) SetCorrectedValue(v string) *FieldCreate {
	_c.mutation.SetCorrectedValue(v)
	return _c
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_c *FieldCreate) SetNillableCorrectedValue(v *string) *FieldCreate {
	if v != nil {
		_c.SetCorrectedValue(*v)
	}
	return _c
}

// SetCorrected sets the "corrected" field.
func (_c *FieldCreate) SetCorrected(v bool) *FieldCreate {
	_c.mutation.SetCorrected(v)
	return _c
}

// SetNillableCorrected sets the "corrected" field if the given value is not nil.
func (_c *FieldCreate) SetNillableCorrected(v *bool) *FieldCreate {
	if v != nil {
		_c.SetCorrected(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *FieldCreate) SetConfidence(v float32) *FieldCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FieldCreate) SetErrorMessage(v string) *FieldCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FieldCreate) SetNillableErrorMessage(v *string) *FieldCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldCreate) SetID(v uuid.UUID) *FieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FieldCreate) SetNillableID(v *uuid.UUID) *FieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *FieldCreate) SetDocument(v *Document) *FieldCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the FieldMutation object of the builder.
func (_c *FieldCreate) Mutation() *FieldMutation {
	return _c.mutation
}

// Save creates the Field in the database.
func (_c *FieldCreate) Save(ctx context.Context) (*Field, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldCreate) SaveX(ctx context.Context) *Field {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldCreate) defaults() {
	if _, ok := _c.mutation.Corrected(); !ok {
		v := entfield.DefaultCorrected
		_c.mutation.SetCorrected(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := entfield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Field.document_id"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "Field.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := entfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "Field.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalValue(); !ok {
		return &ValidationError{Name: "original_value", err: errors.New(`ent: missing required field "Field.original_value"`)}
	}
	if _, ok := _c.mutation.Corrected(); !ok {
		return &ValidationError{Name: "corrected", err: errors.New(`ent: missing required field "Field.corrected"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Field.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := entfield.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Field.confidence": %w`, err)}
		}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Field.document"`)}
	}
	return nil
}

func (_c *FieldCreate) sqlSave(ctx context.Context) (*Field, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FieldCreate) createSpec() (*Field, *sqlgraph.CreateSpec) {
	var (
		_node = &Field{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entfield.Table, sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(entfield.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.OriginalValue(); ok {
		_spec.SetField(entfield.FieldOriginalValue, field.TypeString, value)
		_node.OriginalValue = value
	}
	if value, ok := _c.mutation.CorrectedValue(); ok {
		_spec.SetField(entfield.FieldCorrectedValue, field.TypeString, value)
		_node.CorrectedValue = &value
	}
	if value, ok := _c.mutation.Corrected(); ok {
		_spec.SetField(entfield.FieldCorrected, field.TypeBool, value)
		_node.Corrected = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(entfield.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(entfield.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FieldCreateBulk is the builder for creating many Field entities in bulk.
type FieldCreateBulk struct {
	config
	err      error
	builders []*FieldCreate
}

// Save creates the Field entities in the database.
func (_c *FieldCreateBulk) Save(ctx context.Context) ([]*Field, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Field, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FieldCreateBulk) SaveX(ctx context.Context) []*Field {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
