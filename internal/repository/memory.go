package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/entity"
)

// memoryRepository keeps the document aggregate in process memory. It backs
// tests and the CLI's one-shot mode where standing up a database is not worth
// it. Semantics match the ent-backed implementation.
type memoryRepository struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]*entity.Document
}

func NewMemoryRepository() DocumentRepository {
	return &memoryRepository{docs: make(map[uuid.UUID]*entity.Document)}
}

func cloneDocument(d *entity.Document) *entity.Document {
	cp := *d
	cp.Fields = make([]*entity.Field, len(d.Fields))
	for i, f := range d.Fields {
		fc := *f
		cp.Fields[i] = &fc
	}
	return &cp
}

func (r *memoryRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	now := time.Now().UTC()
	doc := &entity.Document{
		ID:               uuid.New(),
		OriginalFilename: req.OriginalFilename,
		StoredFileRef:    req.StoredFileRef,
		DocumentType:     req.DocumentType,
		Confidence:       req.Confidence,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, f := range req.Fields {
		doc.Fields = append(doc.Fields, &entity.Field{
			ID:            uuid.New(),
			DocumentID:    doc.ID,
			FieldName:     f.Name,
			OriginalValue: f.Value,
			Confidence:    f.Confidence,
			ErrorMessage:  f.ErrorMessage,
		})
	}

	r.mu.Lock()
	r.docs[doc.ID] = doc
	r.mu.Unlock()
	return cloneDocument(doc), nil
}

func (r *memoryRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, common.ErrDocumentNotFound
	}
	return cloneDocument(doc), nil
}

func (r *memoryRepository) List(ctx context.Context, opts ListOptions) ([]*entity.Document, error) {
	r.mu.RLock()
	all := make([]*entity.Document, 0, len(r.docs))
	for _, d := range r.docs {
		all = append(all, cloneDocument(d))
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return strings.Compare(all[i].ID.String(), all[j].ID.String()) > 0
	})

	if opts.Offset > 0 {
		if opts.Offset >= len(all) {
			return []*entity.Document{}, nil
		}
		all = all[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all, nil
}

func (r *memoryRepository) ApplyCorrections(ctx context.Context, id uuid.UUID, corrections map[string]string) (*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, common.ErrDocumentNotFound
	}

	byName := make(map[string]*entity.Field, len(doc.Fields))
	for _, f := range doc.Fields {
		byName[f.FieldName] = f
	}
	// validate every name before touching anything
	for name := range corrections {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("field %q: %w", name, common.ErrFieldNotFound)
		}
	}

	for name, value := range corrections {
		f := byName[name]
		v := value
		f.CorrectedValue = &v
		f.Corrected = true
	}
	doc.UpdatedAt = time.Now().UTC()
	return cloneDocument(doc), nil
}

func (r *memoryRepository) UpdateDocumentType(ctx context.Context, id uuid.UUID, docType constants.DocumentType) (*entity.Document, error) {
	if !docType.IsValid() {
		return nil, fmt.Errorf("unknown document type %q: %w", docType, common.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, common.ErrDocumentNotFound
	}
	doc.DocumentType = docType
	doc.UpdatedAt = time.Now().UTC()
	return cloneDocument(doc), nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return common.ErrDocumentNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *memoryRepository) DeleteAll(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.docs)
	r.docs = make(map[uuid.UUID]*entity.Document)
	return n, nil
}
