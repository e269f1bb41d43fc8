package utils

import (
	"time"

	documentspb "github.com/docuflow/idextract/gen/proto/documents/v1"
	"github.com/docuflow/idextract/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBField(f *entity.Field) *documentspb.Field {
	return &documentspb.Field{
		Id:             f.ID.String(),
		FieldName:      f.FieldName,
		OriginalValue:  f.OriginalValue,
		CorrectedValue: strOrEmpty(f.CorrectedValue),
		Corrected:      f.Corrected,
		Confidence:     f.Confidence,
		ErrorMessage:   strOrEmpty(f.ErrorMessage),
		NeedsReview:    f.NeedsReview(),
	}
}

func ToPBDocument(d *entity.Document) *documentspb.Document {
	out := &documentspb.Document{
		Id:                       d.ID.String(),
		OriginalFilename:         d.OriginalFilename,
		DocumentType:             string(d.DocumentType),
		ClassificationConfidence: d.Confidence,
		RequiresReview:           d.RequiresReview(),
		CreatedAt:                d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:                d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for _, f := range d.Fields {
		out.Fields = append(out.Fields, ToPBField(f))
	}
	return out
}
