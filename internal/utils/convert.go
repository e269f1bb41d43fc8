package utils

import (
	"sort"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/gen/ent"
	"github.com/docuflow/idextract/internal/entity"
)

// ToDocument maps a generated ent record (with its fields edge loaded) onto
// the transfer struct the rest of the application works with.
func ToDocument(rec *ent.Document) *entity.Document {
	if rec == nil {
		return nil
	}
	doc := &entity.Document{
		ID:               rec.ID,
		OriginalFilename: rec.OriginalFilename,
		StoredFileRef:    rec.StoredFileReference,
		DocumentType:     constants.DocumentType(rec.DocumentType),
		Confidence:       rec.ClassificationConfidence,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
	for _, f := range rec.Edges.Fields {
		doc.Fields = append(doc.Fields, ToField(f))
	}
	SortDocumentFields(doc)
	return doc
}

// SortDocumentFields puts fields into the canonical required-field order for
// the document's type. The database does not store a position, so ordering is
// restored on read. Names outside the required list sort last, alphabetically.
func SortDocumentFields(doc *entity.Document) {
	rank := map[string]int{}
	for i, n := range constants.RequiredFields(doc.DocumentType) {
		rank[n] = i
	}
	sort.SliceStable(doc.Fields, func(i, j int) bool {
		ri, iok := rank[doc.Fields[i].FieldName]
		rj, jok := rank[doc.Fields[j].FieldName]
		if iok && jok {
			return ri < rj
		}
		if iok != jok {
			return iok
		}
		return doc.Fields[i].FieldName < doc.Fields[j].FieldName
	})
}

func ToField(f *ent.Field) *entity.Field {
	if f == nil {
		return nil
	}
	return &entity.Field{
		ID:             f.ID,
		DocumentID:     f.DocumentID,
		FieldName:      f.FieldName,
		OriginalValue:  f.OriginalValue,
		CorrectedValue: f.CorrectedValue,
		Corrected:      f.Corrected,
		Confidence:     f.Confidence,
		ErrorMessage:   f.ErrorMessage,
	}
}
