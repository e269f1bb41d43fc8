package classify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/llm"
)

// Result is the classification decision for one upload.
type Result struct {
	DocumentType constants.DocumentType
	Confidence   float32
}

// Classifier determines the document type from the normalized image. The
// recognition capability is authoritative; keyword cues only break ties when
// the capability is ambiguous.
type Classifier struct {
	recognizer llm.Recognizer
	logger     *slog.Logger

	// AmbiguityThreshold is the confidence below which text cues may
	// override the capability's answer.
	AmbiguityThreshold float32
}

func New(recognizer llm.Recognizer, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		recognizer:         recognizer,
		logger:             logger,
		AmbiguityThreshold: 0.5,
	}
}

// Classify invokes the capability once (the client retries transient failures
// internally). A capability failure maps to ClassificationUnavailable; an
// answer outside the closed set maps to ClassificationUnknown with
// confidence 0. Low confidence alone is never retried.
func (c *Classifier) Classify(ctx context.Context, imagePNG []byte, textHint string) (Result, error) {
	resp, err := c.recognizer.Classify(ctx, llm.ClassifyRequest{ImagePNG: imagePNG, TextHint: textHint})
	if err != nil {
		if errors.Is(err, llm.ErrMalformedResponse) {
			c.logger.Error("classify.malformed", "error", err)
			return Result{}, fmt.Errorf("%v: %w", err, common.ErrClassificationUnknown)
		}
		c.logger.Error("classify.capability_failed", "error", err)
		return Result{}, fmt.Errorf("%v: %w", err, common.ErrClassificationUnavailable)
	}

	docType := constants.ParseDocumentType(resp.DocumentType)
	if docType == constants.TypeUnknown {
		c.logger.Warn("classify.out_of_set", "returned_type", resp.DocumentType)
		return Result{DocumentType: constants.TypeUnknown, Confidence: 0},
			fmt.Errorf("returned type %q: %w", resp.DocumentType, common.ErrClassificationUnknown)
	}

	conf := resp.Confidence
	if conf < c.AmbiguityThreshold {
		if cued := cueFromText(textHint); cued.IsValid() && cued != docType {
			c.logger.Info("classify.tie_break",
				"capability_type", docType, "cued_type", cued, "confidence", conf)
			docType = cued
		}
	}

	c.logger.Info("classify.ok", "document_type", docType, "confidence", conf)
	return Result{DocumentType: docType, Confidence: conf}, nil
}

// cueFromText looks for the strong layout markers each document type prints.
// Returns TypeUnknown when no cue (or conflicting cues) are present.
func cueFromText(text string) constants.DocumentType {
	if text == "" {
		return constants.TypeUnknown
	}
	upper := strings.ToUpper(text)

	var hits []constants.DocumentType
	if strings.Contains(upper, "P<") || strings.Contains(upper, "PASSPORT") || strings.Contains(upper, "PASSEPORT") {
		hits = append(hits, constants.TypePassport)
	}
	if strings.Contains(upper, "DRIVER LICENSE") || strings.Contains(upper, "DRIVER'S LICENSE") {
		hits = append(hits, constants.TypeDriversLicense)
	}
	if strings.Contains(upper, "EMPLOYMENT AUTHORIZATION") || strings.Contains(upper, "USCIS") {
		hits = append(hits, constants.TypeEADCard)
	}
	if len(hits) != 1 {
		return constants.TypeUnknown
	}
	return hits[0]
}
