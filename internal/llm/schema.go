package llm

// BuildClassificationJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// for the classification answer. document_type is deliberately an open string:
// an out-of-set label is a semantic condition the classifier maps to the
// unknown sentinel, not a malformed response.
func BuildClassificationJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"document_type": map[string]any{"type": "string", "minLength": 1},
			"confidence":    map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"document_type", "confidence"},
	}
}

// BuildExtractionJSONSchema returns the schema for a type-specific extraction
// response: one entry per requested canonical field, each an object holding
// value (string or null) and confidence. Fields the capability omits are
// synthesized later. Keys outside the requested set are allowed but must have
// the same shape; models often answer with aliases (surname, dob) that the
// field normalizer folds onto canonical names.
func BuildExtractionJSONSchema(fieldNames []string) map[string]any {
	props := make(map[string]any, len(fieldNames))
	for _, name := range fieldNames {
		props[name] = fieldProp()
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": fieldProp(),
		"properties":           props,
	}
}

func fieldProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"value":      map[string]any{"type": []string{"string", "null"}},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"value"},
	}
}
