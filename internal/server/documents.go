package server

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/docuflow/idextract/constants"
	documentspb "github.com/docuflow/idextract/gen/proto/documents/v1"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/export"
	"github.com/docuflow/idextract/internal/pipeline"
	"github.com/docuflow/idextract/internal/repository"
	"github.com/docuflow/idextract/internal/utils"
)

type DocumentService struct {
	documentspb.UnimplementedDocumentsServiceServer
	processor *pipeline.Processor
	repo      repository.DocumentRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewDocumentService(processor *pipeline.Processor, repo repository.DocumentRepository, exporter *export.Service, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{
		processor: processor,
		repo:      repo,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *DocumentService) ProcessDocument(ctx context.Context, req *documentspb.ProcessDocumentRequest) (*documentspb.ProcessDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}

	mediaType := req.GetMediaType()
	if mediaType == "" {
		ext := constants.NormalizeExt(filepath.Ext(filename))
		mediaType = constants.MapExtToMediaType(ext)
	}

	s.logger.Info("processing document", "filename", filename, "media_type", mediaType, "bytes", len(req.GetContent()))
	doc, err := s.processor.Process(ctx, pipeline.UploadRequest{
		Filename:  filename,
		MediaType: mediaType,
		Data:      req.GetContent(),
		TextHint:  req.GetTextHint(),
	})
	if err != nil {
		s.logger.Error("failed to process document", "filename", filename, "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	return &documentspb.ProcessDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *documentspb.GetDocumentRequest) (*documentspb.GetDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	return &documentspb.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *documentspb.ListDocumentsRequest) (*documentspb.ListDocumentsResponse, error) {
	if req.GetLimit() < 0 || req.GetOffset() < 0 {
		return nil, common.InvalidArgumentError("limit and offset must be non-negative")
	}

	docs, err := s.repo.List(ctx, repository.ListOptions{
		Limit:  int(req.GetLimit()),
		Offset: int(req.GetOffset()),
	})
	if err != nil {
		s.logger.Error("failed to list documents", "error", err)
		return nil, common.ToGRPCStatus(err)
	}

	out := make([]*documentspb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &documentspb.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentService) ApplyCorrections(ctx context.Context, req *documentspb.ApplyCorrectionsRequest) (*documentspb.ApplyCorrectionsResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	if len(req.GetCorrections()) == 0 {
		return nil, common.InvalidArgumentError("corrections must not be empty")
	}

	doc, err := s.repo.ApplyCorrections(ctx, id, req.GetCorrections())
	if err != nil {
		s.logger.Error("failed to apply corrections", "document_id", id, "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	s.logger.Info("corrections applied", "document_id", id, "fields", len(req.GetCorrections()))
	return &documentspb.ApplyCorrectionsResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentService) UpdateDocumentType(ctx context.Context, req *documentspb.UpdateDocumentTypeRequest) (*documentspb.UpdateDocumentTypeResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	docType := constants.ParseDocumentType(req.GetDocumentType())
	if !docType.IsValid() {
		return nil, common.InvalidArgumentError("document_type must be one of passport, drivers_license, ead_card")
	}

	doc, err := s.repo.UpdateDocumentType(ctx, id, docType)
	if err != nil {
		s.logger.Error("failed to update document type", "document_id", id, "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	return &documentspb.UpdateDocumentTypeResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, req *documentspb.DeleteDocumentRequest) (*documentspb.DeleteDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete document", "document_id", id, "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	return &documentspb.DeleteDocumentResponse{}, nil
}

func (s *DocumentService) DeleteAllDocuments(ctx context.Context, _ *documentspb.DeleteAllDocumentsRequest) (*documentspb.DeleteAllDocumentsResponse, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.logger.Error("failed to delete all documents", "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	return &documentspb.DeleteAllDocumentsResponse{DeletedCount: int32(n)}, nil
}

func (s *DocumentService) ExportDocuments(ctx context.Context, _ *documentspb.ExportDocumentsRequest) (*documentspb.ExportDocumentsResponse, error) {
	xlsx, err := s.exporter.ExportDocumentsXLSX(ctx)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, common.ToGRPCStatus(err)
	}
	return &documentspb.ExportDocumentsResponse{Xlsx: xlsx}, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("document_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	return id, nil
}
