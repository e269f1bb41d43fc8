package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/entity"
	"github.com/docuflow/idextract/internal/fields"
	"github.com/docuflow/idextract/internal/llm"
)

// Config holds thresholds for the extraction stage.
type Config struct {
	// ConfidenceThreshold flags fields below it for mandatory review
	// regardless of extracted value. Default 0.5.
	ConfidenceThreshold float32
}

// Extractor is the type-aware field extraction stage: normalized image plus
// document type in, the complete required-field list out.
type Extractor struct {
	recognizer llm.Recognizer
	cfg        Config
	logger     *slog.Logger
}

func New(recognizer llm.Recognizer, cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = constants.ReviewConfidenceThreshold
	}
	return &Extractor{recognizer: recognizer, cfg: cfg, logger: logger}
}

// Result carries the ordered raw fields plus the capability's raw JSON for
// audit logging.
type Result struct {
	Fields  []entity.RawField
	RawJSON []byte
	// Extras holds canonical-named values outside the required list, such as
	// full_name on a license. The field normalizer uses them to backfill
	// missing name fields.
	Extras map[string]entity.RawField
	// LowConfidence names fields under the acceptance threshold.
	LowConfidence []string
}

// Extract invokes the capability once with the type-specific schema. Every
// required field of docType appears in the output exactly once, in canonical
// order; fields the capability omitted are synthesized with a nil value and
// confidence 0 so no downstream stage ever sees a missing key.
func (e *Extractor) Extract(ctx context.Context, imagePNG []byte, docType constants.DocumentType) (*Result, error) {
	required := constants.RequiredFields(docType)
	if required == nil {
		return nil, fmt.Errorf("document type %q has no field schema: %w", docType, common.ErrExtractionMalformed)
	}

	resp, raw, err := e.recognizer.Extract(ctx, llm.ExtractRequest{
		ImagePNG:     imagePNG,
		DocumentType: docType,
		FieldNames:   required,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMalformedResponse) {
			e.logger.Error("extract.malformed", "document_type", docType, "error", err)
			return nil, fmt.Errorf("%v: %w", err, common.ErrExtractionMalformed)
		}
		e.logger.Error("extract.capability_failed", "document_type", docType, "error", err)
		return nil, fmt.Errorf("%v: %w", err, common.ErrExtractionUnavailable)
	}

	// Fold whatever names the capability used onto canonical names. An exact
	// canonical key wins over an alias; among conflicting aliases a non-nil
	// value beats nil, then higher confidence, then the alphabetically first
	// alias, so identical responses always fold identically.
	names := make([]string, 0, len(resp))
	for name := range resp {
		names = append(names, name)
	}
	sort.Strings(names)

	folded := make(map[string]llm.ExtractedField, len(resp))
	for _, name := range names {
		f := resp[name]
		canon := fields.CanonicalName(name, docType)
		prev, seen := folded[canon]
		if seen {
			if name == canon {
				// exact key replaces an alias unless that drops a value
				if prev.Value != nil && f.Value == nil {
					continue
				}
			} else {
				if _, exact := resp[canon]; exact {
					continue
				}
				if prev.Value != nil && (f.Value == nil || prev.Confidence >= f.Confidence) {
					continue
				}
			}
		}
		folded[canon] = f
	}

	out := &Result{
		Fields:  make([]entity.RawField, 0, len(required)),
		RawJSON: raw,
	}
	requiredSet := make(map[string]bool, len(required))
	synthesized := 0
	for _, name := range required {
		requiredSet[name] = true
		f, ok := folded[name]
		if !ok {
			// defensive completion
			out.Fields = append(out.Fields, entity.RawField{Name: name})
			synthesized++
			continue
		}
		rf := entity.RawField{Name: name, Value: f.Value, Confidence: f.Confidence}
		if f.Value != nil && f.Confidence < e.cfg.ConfidenceThreshold {
			out.LowConfidence = append(out.LowConfidence, name)
		}
		out.Fields = append(out.Fields, rf)
	}
	for name, f := range folded {
		if requiredSet[name] || f.Value == nil {
			continue
		}
		if out.Extras == nil {
			out.Extras = make(map[string]entity.RawField)
		}
		out.Extras[name] = entity.RawField{Name: name, Value: f.Value, Confidence: f.Confidence}
	}

	e.logger.Info("extract.ok",
		"document_type", docType,
		"fields", len(out.Fields),
		"synthesized", synthesized,
		"low_confidence", len(out.LowConfidence),
	)
	return out, nil
}
