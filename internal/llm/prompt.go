package llm

import (
	"strings"

	"github.com/docuflow/idextract/constants"
)

// BuildClassifySystemPrompt restricts the answer to the closed document-type
// set and demands schema-shaped JSON.
func BuildClassifySystemPrompt() string {
	types := make([]string, 0, len(constants.AllDocumentTypes))
	for _, t := range constants.AllDocumentTypes {
		types = append(types, string(t))
	}
	parts := []string{
		"You are an identity-document classification expert. Return ONLY JSON that matches the provided JSON Schema.",
		"Classify the attached document image as exactly one of: " + strings.Join(types, ", ") + ".",
		"Key indicators: a passport page carries a machine readable zone starting with 'P<';",
		"a driver's license is a portrait ID card with DL number, DOB, EXP and physical descriptors;",
		"an EAD card carries USCIS branding, an A-Number and category codes like C08 or C09.",
		"Report confidence in [0,1]. Do not guess a type you cannot support from the image.",
	}
	return strings.Join(parts, " ")
}

// BuildClassifyUserPrompt packages optional OCR text cues alongside the image.
func BuildClassifyUserPrompt(req ClassifyRequest) string {
	var b strings.Builder
	b.WriteString("Classify the attached identity document image.\n")
	if hint := strings.TrimSpace(req.TextHint); hint != "" {
		b.WriteString("\nOCR text cues (may be noisy):\n")
		if len(hint) > 2000 {
			b.WriteString(hint[:2000])
			b.WriteString("\n…(truncated)")
		} else {
			b.WriteString(hint)
		}
	}
	return b.String()
}

// BuildExtractSystemPrompt composes extraction rules for a known document type.
func BuildExtractSystemPrompt(docType constants.DocumentType, fieldNames []string) string {
	parts := []string{
		"You are a document field extraction expert specializing in U.S. identity documents (" + docType.DisplayName() + ").",
		"Return ONLY JSON that matches the provided JSON Schema: one object per requested field with 'value' and 'confidence'.",
		"Requested fields: " + strings.Join(fieldNames, ", ") + ".",
		"Use null for 'value' when the field is truly not present; NEVER guess or make up values.",
		"Correct common OCR misreads using context (O vs 0, I vs 1, S vs 5, B vs 8).",
		"Dates on U.S. documents read month-first; report them exactly as printed.",
	}
	return strings.Join(parts, " ")
}

// BuildExtractUserPrompt is the per-request user message for extraction.
func BuildExtractUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	b.WriteString("Extract the requested fields from the attached ")
	b.WriteString(req.DocumentType.DisplayName())
	b.WriteString(" image. Include a confidence in [0,1] for every field you report.\n")
	return b.String()
}
