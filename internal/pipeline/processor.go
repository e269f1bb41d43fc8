package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/classify"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/entity"
	"github.com/docuflow/idextract/internal/extract"
	"github.com/docuflow/idextract/internal/fields"
	"github.com/docuflow/idextract/internal/imaging"
	"github.com/docuflow/idextract/internal/repository"
)

// ImageStore persists the normalized raster for later display and audit.
type ImageStore interface {
	Save(id uuid.UUID, png []byte) (string, error)
	Remove(ref string) error
}

// Processor runs one upload through the full pipeline: normalize the image,
// classify the type, extract the type's required fields, normalize their
// values, and persist the aggregate. Validation and capability failures stop
// the pipeline before anything is persisted; field normalization problems do
// not, they surface as flagged fields on the created document.
type Processor struct {
	normalizer *imaging.Normalizer
	classifier *classify.Classifier
	extractor  *extract.Extractor
	fields     *fields.Normalizer
	store      ImageStore
	repo       repository.DocumentRepository
	logger     *slog.Logger
}

func NewProcessor(
	normalizer *imaging.Normalizer,
	classifier *classify.Classifier,
	extractor *extract.Extractor,
	fieldNormalizer *fields.Normalizer,
	store ImageStore,
	repo repository.DocumentRepository,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		normalizer: normalizer,
		classifier: classifier,
		extractor:  extractor,
		fields:     fieldNormalizer,
		store:      store,
		repo:       repo,
		logger:     logger,
	}
}

// UploadRequest is one document upload.
type UploadRequest struct {
	Filename  string
	MediaType string
	Data      []byte
	// TextHint is optional OCR text used only for classification
	// tie-breaking.
	TextHint string
}

// Process runs the pipeline end to end and returns the created document.
func (p *Processor) Process(ctx context.Context, req UploadRequest) (*entity.Document, error) {
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("empty upload: %w", common.ErrEmptyDocument)
	}
	if !allowedMediaType(req.MediaType) {
		return nil, fmt.Errorf("media type %q: %w", req.MediaType, common.ErrUnsupportedFormat)
	}

	logger := p.logger
	if reqID := common.RequestIDFromContext(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	logger.Info("pipeline.start", "filename", req.Filename, "media_type", req.MediaType, "bytes", len(req.Data))

	norm, err := p.normalizer.Normalize(req.Data, req.MediaType)
	if err != nil {
		return nil, err
	}

	// PDFs with an embedded text layer supply their own cue text
	hint := req.TextHint
	if hint == "" {
		hint = norm.Text
	}

	cls, err := p.classifier.Classify(ctx, norm.PNG, hint)
	if err != nil {
		return nil, err
	}

	exres, err := p.extractor.Extract(ctx, norm.PNG, cls.DocumentType)
	if err != nil {
		return nil, err
	}

	final := p.fields.Normalize(cls.DocumentType, exres.Fields, exres.Extras)

	ref, err := p.store.Save(uuid.New(), norm.PNG)
	if err != nil {
		return nil, err
	}

	doc, err := p.repo.Create(ctx, &repository.CreateDocumentRequest{
		OriginalFilename: req.Filename,
		StoredFileRef:    ref,
		DocumentType:     cls.DocumentType,
		Confidence:       cls.Confidence,
		Fields:           final,
	})
	if err != nil {
		if rerr := p.store.Remove(ref); rerr != nil {
			logger.Warn("pipeline.orphan_image", "ref", ref, "error", rerr)
		}
		return nil, err
	}

	logger.Info("pipeline.done",
		"document_id", doc.ID,
		"document_type", doc.DocumentType,
		"confidence", doc.Confidence,
		"requires_review", doc.RequiresReview(),
	)
	return doc, nil
}

func allowedMediaType(mt string) bool {
	switch mt {
	case constants.MediaPNG, constants.MediaJPEG, constants.MediaPDF:
		return true
	}
	return false
}
