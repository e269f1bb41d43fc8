package entity

// RawField is a transient extraction result. It is produced by the field
// extractor and consumed by the field normalizer; never persisted directly.
type RawField struct {
	Name       string
	Value      *string // nil when the recognizer could not locate the field
	Confidence float32
}

// FinalField is a normalized, persistence-ready field value.
type FinalField struct {
	Name         string
	Value        string // never empty; NOT_FOUND sentinel when absent
	Confidence   float32
	ErrorMessage *string // set when normalization kept a raw value or the field is missing
}
