package repository

import (
	"context"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/gen/ent"
	entdoc "github.com/docuflow/idextract/gen/ent/document"
	entfield "github.com/docuflow/idextract/gen/ent/field"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/entity"
	"github.com/docuflow/idextract/internal/utils"
)

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := tx.Document.Create().
		SetOriginalFilename(req.OriginalFilename).
		SetStoredFileReference(req.StoredFileRef).
		SetDocumentType(string(req.DocumentType)).
		SetClassificationConfidence(req.Confidence).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}

	builders := make([]*ent.FieldCreate, len(req.Fields))
	for i, f := range req.Fields {
		builders[i] = tx.Field.Create().
			SetDocumentID(doc.ID).
			SetFieldName(f.Name).
			SetOriginalValue(f.Value).
			SetConfidence(f.Confidence).
			SetNillableErrorMessage(f.ErrorMessage)
	}
	if _, err := tx.Field.CreateBulk(builders...).Save(ctx); err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("repository.document_created",
		"document_id", doc.ID,
		"document_type", req.DocumentType,
		"fields", len(req.Fields),
	)
	return r.Get(ctx, doc.ID)
}

func (r *documentRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	rec, err := r.client.Document.Query().
		Where(entdoc.ID(id)).
		WithFields().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrDocumentNotFound
		}
		r.logger.Error("repository.get_failed", "document_id", id, "error", err)
		return nil, err
	}
	return utils.ToDocument(rec), nil
}

func (r *documentRepository) List(ctx context.Context, opts ListOptions) ([]*entity.Document, error) {
	q := r.client.Document.Query().
		WithFields().
		Order(entdoc.ByCreatedAt(entsql.OrderDesc()), entdoc.ByID(entsql.OrderDesc()))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	recs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("repository.list_failed", "error", err)
		return nil, err
	}
	result := make([]*entity.Document, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToDocument(rec)
	}
	return result, nil
}

func (r *documentRepository) ApplyCorrections(ctx context.Context, id uuid.UUID, corrections map[string]string) (*entity.Document, error) {
	if len(corrections) == 0 {
		return r.Get(ctx, id)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	flds, err := tx.Field.Query().
		Where(entfield.DocumentID(id)).
		All(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if len(flds) == 0 {
		exists, eerr := tx.Document.Query().Where(entdoc.ID(id)).Exist(ctx)
		if eerr != nil {
			return nil, rollback(tx, eerr)
		}
		if !exists {
			return nil, rollback(tx, common.ErrDocumentNotFound)
		}
	}

	byName := make(map[string]*ent.Field, len(flds))
	for _, f := range flds {
		byName[f.FieldName] = f
	}
	// validate every name before touching anything
	for name := range corrections {
		if _, ok := byName[name]; !ok {
			return nil, rollback(tx, fmt.Errorf("field %q: %w", name, common.ErrFieldNotFound))
		}
	}

	for name, value := range corrections {
		f := byName[name]
		if _, err := tx.Field.UpdateOneID(f.ID).
			SetCorrectedValue(value).
			SetCorrected(true).
			Save(ctx); err != nil {
			return nil, rollback(tx, err)
		}
	}
	// bump updated_at on the aggregate root
	if _, err := tx.Document.UpdateOneID(id).Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, common.ErrDocumentNotFound)
		}
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("repository.corrections_applied", "document_id", id, "fields", len(corrections))
	return r.Get(ctx, id)
}

func (r *documentRepository) UpdateDocumentType(ctx context.Context, id uuid.UUID, docType constants.DocumentType) (*entity.Document, error) {
	if !docType.IsValid() {
		return nil, fmt.Errorf("unknown document type %q: %w", docType, common.ErrInvalidInput)
	}

	if _, err := r.client.Document.UpdateOneID(id).
		SetDocumentType(string(docType)).
		Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrDocumentNotFound
		}
		r.logger.Error("repository.update_type_failed", "document_id", id, "error", err)
		return nil, err
	}

	r.logger.Info("repository.document_type_updated", "document_id", id, "document_type", docType)
	return r.Get(ctx, id)
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.Field.Delete().Where(entfield.DocumentID(id)).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Document.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return rollback(tx, common.ErrDocumentNotFound)
		}
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	r.logger.Info("repository.document_deleted", "document_id", id)
	return nil
}

func (r *documentRepository) DeleteAll(ctx context.Context) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, err
	}

	if _, err := tx.Field.Delete().Exec(ctx); err != nil {
		return 0, rollback(tx, err)
	}
	n, err := tx.Document.Delete().Exec(ctx)
	if err != nil {
		return 0, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	r.logger.Info("repository.all_documents_deleted", "count", n)
	return n, nil
}
