package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/entity"
	"github.com/docuflow/idextract/internal/export"
	"github.com/docuflow/idextract/internal/pipeline"
	"github.com/docuflow/idextract/internal/repository"
)

// maxUploadBytes bounds multipart uploads; scans beyond this are rejected
// before reaching the pipeline.
const maxUploadBytes = 32 << 20

// ImageReader reads a stored normalized image back for display.
type ImageReader interface {
	Read(ref string) ([]byte, error)
}

// Handler is the REST gateway over the extraction pipeline and document
// store. It mirrors the gRPC surface for browser clients.
type Handler struct {
	processor *pipeline.Processor
	repo      repository.DocumentRepository
	images    ImageReader
	exporter  *export.Service
	logger    *slog.Logger
}

func NewHandler(processor *pipeline.Processor, repo repository.DocumentRepository, images ImageReader, exporter *export.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		processor: processor,
		repo:      repo,
		images:    images,
		exporter:  exporter,
		logger:    logger,
	}
}

// Router builds the chi router with the full route table.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.handleHealth)
	r.Route("/documents", func(r chi.Router) {
		r.Post("/", h.handleUpload)
		r.Get("/", h.handleList)
		r.Delete("/", h.handleDeleteAll)
		r.Get("/export", h.handleExport)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Delete("/", h.handleDelete)
			r.Patch("/", h.handleUpdateType)
			r.Patch("/fields", h.handleCorrections)
			r.Get("/image", h.handleImage)
		})
	})
	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.writeError(w, r, common.WrapError(common.ErrInvalidInput, "invalid multipart body"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, r, common.WrapError(common.ErrInvalidInput, "missing file part"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" || mediaType == "application/octet-stream" {
		ext := constants.NormalizeExt(filepath.Ext(header.Filename))
		mediaType = constants.MapExtToMediaType(ext)
	}

	ctx := common.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
	doc, err := h.processor.Process(ctx, pipeline.UploadRequest{
		Filename:  header.Filename,
		MediaType: mediaType,
		Data:      data,
		TextHint:  r.FormValue("text_hint"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDocumentJSON(doc))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	opts := repository.ListOptions{}
	var err error
	if opts.Limit, err = queryInt(r, "limit"); err != nil {
		h.writeError(w, r, common.WrapError(common.ErrInvalidInput, "limit must be a non-negative integer"))
		return
	}
	if opts.Offset, err = queryInt(r, "offset"); err != nil {
		h.writeError(w, r, common.WrapError(common.ErrInvalidInput, "offset must be a non-negative integer"))
		return
	}

	docs, err := h.repo.List(r.Context(), opts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]documentJSON, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentJSON(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": out})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	doc, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentJSON(doc))
}

func (h *Handler) handleCorrections(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		Corrections map[string]string `json:"corrections"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, common.WrapError(common.ErrInvalidInput, "invalid request body"))
		return
	}
	if len(body.Corrections) == 0 {
		h.writeError(w, r, common.WrapError(common.ErrInvalidInput, "corrections must not be empty"))
		return
	}

	doc, err := h.repo.ApplyCorrections(r.Context(), id, body.Corrections)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentJSON(doc))
}

func (h *Handler) handleUpdateType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		DocumentType string `json:"document_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, common.WrapError(common.ErrInvalidInput, "invalid request body"))
		return
	}
	docType := constants.ParseDocumentType(body.DocumentType)
	if !docType.IsValid() {
		h.writeError(w, r, common.WrapError(common.ErrInvalidInput, "document_type must be one of passport, drivers_license, ead_card"))
		return
	}

	doc, err := h.repo.UpdateDocumentType(r.Context(), id, docType)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentJSON(doc))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.repo.DeleteAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted_count": n})
}

func (h *Handler) handleImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	doc, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	png, err := h.images.Read(doc.StoredFileRef)
	if err != nil {
		h.logger.Error("http.image_read_failed", "document_id", id, "ref", doc.StoredFileRef, "error", err)
		h.writeError(w, r, common.WrapError(common.ErrInternal, "stored image unavailable"))
		return
	}
	w.Header().Set("Content-Type", constants.MediaPNG)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	xlsx, err := h.exporter.ExportDocumentsXLSX(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="documents.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(xlsx)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		h.writeError(w, r, common.WrapError(common.ErrInvalidInput, "document id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := common.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("http.request_failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		h.logger.Warn("http.request_rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("invalid " + name)
	}
	return n, nil
}

// documentJSON is the REST representation of a document.
type documentJSON struct {
	ID                       string      `json:"id"`
	OriginalFilename         string      `json:"original_filename"`
	DocumentType             string      `json:"document_type"`
	ClassificationConfidence float32     `json:"classification_confidence"`
	RequiresReview           bool        `json:"requires_review"`
	CreatedAt                string      `json:"created_at"`
	UpdatedAt                string      `json:"updated_at"`
	Fields                   []fieldJSON `json:"fields"`
}

type fieldJSON struct {
	ID             string  `json:"id"`
	FieldName      string  `json:"field_name"`
	OriginalValue  string  `json:"original_value"`
	CorrectedValue *string `json:"corrected_value,omitempty"`
	EffectiveValue string  `json:"effective_value"`
	Corrected      bool    `json:"corrected"`
	Confidence     float32 `json:"confidence"`
	ErrorMessage   *string `json:"error_message,omitempty"`
	NeedsReview    bool    `json:"needs_review"`
}

func toDocumentJSON(d *entity.Document) documentJSON {
	out := documentJSON{
		ID:                       d.ID.String(),
		OriginalFilename:         d.OriginalFilename,
		DocumentType:             string(d.DocumentType),
		ClassificationConfidence: d.Confidence,
		RequiresReview:           d.RequiresReview(),
		CreatedAt:                d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:                d.UpdatedAt.UTC().Format(time.RFC3339),
		Fields:                   make([]fieldJSON, 0, len(d.Fields)),
	}
	for _, f := range d.Fields {
		out.Fields = append(out.Fields, fieldJSON{
			ID:             f.ID.String(),
			FieldName:      f.FieldName,
			OriginalValue:  f.OriginalValue,
			CorrectedValue: f.CorrectedValue,
			EffectiveValue: f.EffectiveValue(),
			Corrected:      f.Corrected,
			Confidence:     f.Confidence,
			ErrorMessage:   f.ErrorMessage,
			NeedsReview:    f.NeedsReview(),
		})
	}
	return out
}
