package llm

import (
	"context"
	"errors"

	"github.com/docuflow/idextract/constants"
)

// ErrMalformedResponse marks a capability answer that could not be parsed or
// did not satisfy its schema even after sanitization.
var ErrMalformedResponse = errors.New("malformed capability response")

// Classification is the capability's answer to "what document is this".
// DocumentType is whatever label the capability produced; callers map it onto
// the closed set.
type Classification struct {
	DocumentType string  `json:"document_type"`
	Confidence   float32 `json:"confidence"`
}

// ClassifyRequest carries the normalized raster plus optional text cues.
type ClassifyRequest struct {
	ImagePNG []byte
	// TextHint is optional OCR text for keyword tie-breaking; never required.
	TextHint string
}

// ExtractedField is one field value as returned by the capability.
type ExtractedField struct {
	Value      *string `json:"value"`
	Confidence float32 `json:"confidence"`
}

// ExtractRequest names every canonical field the capability must attempt.
type ExtractRequest struct {
	ImagePNG     []byte
	DocumentType constants.DocumentType
	FieldNames   []string
}

// Recognizer is the external recognition capability the pipeline depends on.
// Implementations are fallible, latent, and non-deterministic across calls;
// callers bound each call with a context deadline and retry transient
// failures exactly once.
type Recognizer interface {
	Classify(ctx context.Context, req ClassifyRequest) (Classification, error)
	// Extract returns the capability's field map plus the raw JSON content
	// for audit logging. Requested fields may be missing from the map; the
	// field extractor completes them defensively.
	Extract(ctx context.Context, req ExtractRequest) (map[string]ExtractedField, []byte, error)
}

// Transient marks an error as a transient capability failure (timeout or
// 5xx-equivalent) eligible for the single retry.
type Transient interface {
	Transient() bool
}

// IsTransient reports whether err is a retryable capability failure.
func IsTransient(err error) bool {
	for e := err; e != nil; {
		if t, ok := e.(Transient); ok {
			return t.Transient()
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}
