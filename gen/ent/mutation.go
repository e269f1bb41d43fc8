// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docuflow/idextract/gen/ent/document"
	entfield "github.com/docuflow/idextract/gen/ent/field"
	"github.com/docuflow/idextract/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument = "Document"
	TypeField    = "Field"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	original_filename            *string
	stored_file_reference        *string
	document_type                *string
	classification_confidence    *float32
	addclassification_confidence *float32
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	fields                       map[uuid.UUID]struct{}
	removedfields                map[uuid.UUID]struct{}
	clearedfields                bool
	done                         bool
	oldValue                     func(context.Context) (*Document, error)
	predicates                   []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOriginalFilename sets the "original_filename" field.
func (m *DocumentMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *DocumentMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *DocumentMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetStoredFileReference sets the "stored_file_reference" field.
func (m *DocumentMutation) SetStoredFileReference(s string) {
	m.stored_file_reference = &s
}

// StoredFileReference returns the value of the "stored_file_reference" field in the mutation.
func (m *DocumentMutation) StoredFileReference() (r string, exists bool) {
	v := m.stored_file_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredFileReference returns the old "stored_file_reference" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoredFileReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredFileReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredFileReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredFileReference: %w", err)
	}
	return oldValue.StoredFileReference, nil
}

// ResetStoredFileReference resets all changes to the "stored_file_reference" field.
func (m *DocumentMutation) ResetStoredFileReference() {
	m.stored_file_reference = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (m *DocumentMutation) SetClassificationConfidence(f float32) {
	m.classification_confidence = &f
	m.addclassification_confidence = nil
}

// ClassificationConfidence returns the value of the "classification_confidence" field in the mutation.
func (m *DocumentMutation) ClassificationConfidence() (r float32, exists bool) {
	v := m.classification_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldClassificationConfidence returns the old "classification_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClassificationConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassificationConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassificationConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassificationConfidence: %w", err)
	}
	return oldValue.ClassificationConfidence, nil
}

// AddClassificationConfidence adds f to the "classification_confidence" field.
func (m *DocumentMutation) AddClassificationConfidence(f float32) {
	if m.addclassification_confidence != nil {
		*m.addclassification_confidence += f
	} else {
		m.addclassification_confidence = &f
	}
}

// AddedClassificationConfidence returns the value that was added to the "classification_confidence" field in this mutation.
func (m *DocumentMutation) AddedClassificationConfidence() (r float32, exists bool) {
	v := m.addclassification_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetClassificationConfidence resets all changes to the "classification_confidence" field.
func (m *DocumentMutation) ResetClassificationConfidence() {
	m.classification_confidence = nil
	m.addclassification_confidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFieldIDs adds the "fields" edge to the Field entity by ids.
func (m *DocumentMutation) AddFieldIDs(ids ...uuid.UUID) {
	if m.fields == nil {
		m.fields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the Field entity.
func (m *DocumentMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the Field entity was cleared.
func (m *DocumentMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the Field entity by IDs.
func (m *DocumentMutation) RemoveFieldIDs(ids ...uuid.UUID) {
	if m.removedfields == nil {
		m.removedfields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the Field entity.
func (m *DocumentMutation) RemovedFieldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *DocumentMutation) FieldsIDs() (ids []uuid.UUID) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *DocumentMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.original_filename != nil {
		fields = append(fields, document.FieldOriginalFilename)
	}
	if m.stored_file_reference != nil {
		fields = append(fields, document.FieldStoredFileReference)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.classification_confidence != nil {
		fields = append(fields, document.FieldClassificationConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldOriginalFilename:
		return m.OriginalFilename()
	case document.FieldStoredFileReference:
		return m.StoredFileReference()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldClassificationConfidence:
		return m.ClassificationConfidence()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case document.FieldStoredFileReference:
		return m.OldStoredFileReference(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldClassificationConfidence:
		return m.OldClassificationConfidence(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case document.FieldStoredFileReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredFileReference(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldClassificationConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassificationConfidence(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addclassification_confidence != nil {
		fields = append(fields, document.FieldClassificationConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldClassificationConfidence:
		return m.AddedClassificationConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldClassificationConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClassificationConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case document.FieldStoredFileReference:
		m.ResetStoredFileReference()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldClassificationConfidence:
		m.ResetClassificationConfidence()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.fields != nil {
		edges = append(edges, document.EdgeFields)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedfields != nil {
		edges = append(edges, document.EdgeFields)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfields {
		edges = append(edges, document.EdgeFields)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeFields:
		return m.clearedfields
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeFields:
		m.ResetFields()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// FieldMutation represents an operation that mutates the Field nodes in the graph.
type FieldMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	field_name      *string
	original_value  *string
	corrected_value *string
	corrected       *bool
	confidence      *float32
	addconfidence   *float32
	error_message   *string
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*Field, error)
	predicates      []predicate.Field
}

var _ ent.Mutation = (*FieldMutation)(nil)

// fieldOption allows management of the mutation configuration using functional options.
type fieldOption func(*FieldMutation)

// newFieldMutation creates new mutation for the Field entity.
func newFieldMutation(c config, op Op, opts ...fieldOption) *FieldMutation {
	m := &FieldMutation{
		config:        c,
		op:            op,
		typ:           TypeField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldID sets the ID field of the mutation.
func withFieldID(id uuid.UUID) fieldOption {
	return func(m *FieldMutation) {
		var (
			err   error
			once  sync.Once
			value *Field
		)
		m.oldValue = func(ctx context.Context) (*Field, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Field.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withField sets the old Field of the mutation.
func withField(node *Field) fieldOption {
	return func(m *FieldMutation) {
		m.oldValue = func(context.Context) (*Field, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Field entities.
func (m *FieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Field.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *FieldMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *FieldMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *FieldMutation) ResetDocumentID() {
	m.document = nil
}

// SetFieldName sets the "field_name" field.
func (m *FieldMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *FieldMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *FieldMutation) ResetFieldName() {
	m.field_name = nil
}

// SetOriginalValue sets the "original_value" field.
func (m *FieldMutation) SetOriginalValue(s string) {
	m.original_value = &s
}

// OriginalValue returns the value of the "original_value" field in the mutation.
func (m *FieldMutation) OriginalValue() (r string, exists bool) {
	v := m.original_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalValue returns the old "original_value" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldOriginalValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalValue: %w", err)
	}
	return oldValue.OriginalValue, nil
}

// ResetOriginalValue resets all changes to the "original_value" field.
func (m *FieldMutation) ResetOriginalValue() {
	m.original_value = nil
}

// SetCorrectedValue sets the "corrected_value" field.
func (m *FieldMutation) SetCorrectedValue(s string) {
	m.corrected_value = &s
}

// CorrectedValue returns the value of the "corrected_value" field in the mutation.
func (m *FieldMutation) CorrectedValue() (r string, exists bool) {
	v := m.corrected_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedValue returns the old "corrected_value" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldCorrectedValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedValue: %w", err)
	}
	return oldValue.CorrectedValue, nil
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (m *FieldMutation) ClearCorrectedValue() {
	m.corrected_value = nil
	m.clearedFields[entfield.FieldCorrectedValue] = struct{}{}
}

// CorrectedValueCleared returns if the "corrected_value" field was cleared in this mutation.
func (m *FieldMutation) CorrectedValueCleared() bool {
	_, ok := m.clearedFields[entfield.FieldCorrectedValue]
	return ok
}

// ResetCorrectedValue resets all changes to the "corrected_value" field.
func (m *FieldMutation) ResetCorrectedValue() {
	m.corrected_value = nil
	delete(m.clearedFields, entfield.FieldCorrectedValue)
}

// SetCorrected sets the "corrected" field.
func (m *FieldMutation) SetCorrected(b bool) {
	m.corrected = &b
}

// Corrected returns the value of the "corrected" field in the mutation.
func (m *FieldMutation) Corrected() (r bool, exists bool) {
	v := m.corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrected returns the old "corrected" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldCorrected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrected: %w", err)
	}
	return oldValue.Corrected, nil
}

// ResetCorrected resets all changes to the "corrected" field.
func (m *FieldMutation) ResetCorrected() {
	m.corrected = nil
}

// SetConfidence sets the "confidence" field.
func (m *FieldMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *FieldMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *FieldMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *FieldMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *FieldMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *FieldMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FieldMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Field entity.
// If the Field object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FieldMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[entfield.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FieldMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[entfield.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FieldMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, entfield.FieldErrorMessage)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *FieldMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[entfield.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *FieldMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *FieldMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *FieldMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the FieldMutation builder.
func (m *FieldMutation) Where(ps ...predicate.Field) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Field, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Field).
func (m *FieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.document != nil {
		fields = append(fields, entfield.FieldDocumentID)
	}
	if m.field_name != nil {
		fields = append(fields, entfield.FieldFieldName)
	}
	if m.original_value != nil {
		fields = append(fields, entfield.FieldOriginalValue)
	}
	if m.corrected_value != nil {
		fields = append(fields, entfield.FieldCorrectedValue)
	}
	if m.corrected != nil {
		fields = append(fields, entfield.FieldCorrected)
	}
	if m.confidence != nil {
		fields = append(fields, entfield.FieldConfidence)
	}
	if m.error_message != nil {
		fields = append(fields, entfield.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entfield.FieldDocumentID:
		return m.DocumentID()
	case entfield.FieldFieldName:
		return m.FieldName()
	case entfield.FieldOriginalValue:
		return m.OriginalValue()
	case entfield.FieldCorrectedValue:
		return m.CorrectedValue()
	case entfield.FieldCorrected:
		return m.Corrected()
	case entfield.FieldConfidence:
		return m.Confidence()
	case entfield.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entfield.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case entfield.FieldFieldName:
		return m.OldFieldName(ctx)
	case entfield.FieldOriginalValue:
		return m.OldOriginalValue(ctx)
	case entfield.FieldCorrectedValue:
		return m.OldCorrectedValue(ctx)
	case entfield.FieldCorrected:
		return m.OldCorrected(ctx)
	case entfield.FieldConfidence:
		return m.OldConfidence(ctx)
	case entfield.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Field field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entfield.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case entfield.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case entfield.FieldOriginalValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalValue(v)
		return nil
	case entfield.FieldCorrectedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedValue(v)
		return nil
	case entfield.FieldCorrected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrected(v)
		return nil
	case entfield.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entfield.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Field field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, entfield.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entfield.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entfield.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Field numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entfield.FieldCorrectedValue) {
		fields = append(fields, entfield.FieldCorrectedValue)
	}
	if m.FieldCleared(entfield.FieldErrorMessage) {
		fields = append(fields, entfield.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldMutation) ClearField(name string) error {
	switch name {
	case entfield.FieldCorrectedValue:
		m.ClearCorrectedValue()
		return nil
	case entfield.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Field nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldMutation) ResetField(name string) error {
	switch name {
	case entfield.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case entfield.FieldFieldName:
		m.ResetFieldName()
		return nil
	case entfield.FieldOriginalValue:
		m.ResetOriginalValue()
		return nil
	case entfield.FieldCorrectedValue:
		m.ResetCorrectedValue()
		return nil
	case entfield.FieldCorrected:
		m.ResetCorrected()
		return nil
	case entfield.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entfield.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Field field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, entfield.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entfield.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, entfield.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldMutation) EdgeCleared(name string) bool {
	switch name {
	case entfield.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldMutation) ClearEdge(name string) error {
	switch name {
	case entfield.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Field unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldMutation) ResetEdge(name string) error {
	switch name {
	case entfield.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Field edge %s", name)
}
