package constants

// DocumentType is the closed set of identity documents the pipeline handles.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	TypePassport       DocumentType = "passport"
	TypeDriversLicense DocumentType = "drivers_license"
	TypeEADCard        DocumentType = "ead_card"

	// TypeUnknown is a sentinel for out-of-set classifier answers. It is never
	// persisted; an upload that classifies to it fails.
	TypeUnknown DocumentType = "unknown"
)

// AllDocumentTypes lists every persistable document type.
var AllDocumentTypes = []DocumentType{TypePassport, TypeDriversLicense, TypeEADCard}

// requiredFields maps each document type to its canonical required fields, in
// display order. Every processed document carries exactly this field set.
var requiredFields = map[DocumentType][]string{
	TypePassport: {
		"full_name",
		"date_of_birth",
		"country",
		"issue_date",
		"expiration_date",
	},
	TypeDriversLicense: {
		"license_number",
		"first_name",
		"last_name",
		"date_of_birth",
		"issue_date",
		"expiration_date",
	},
	TypeEADCard: {
		"card_number",
		"category",
		"first_name",
		"last_name",
		"card_expires_date",
	},
}

// RequiredFields returns a copy of the canonical required-field list for t,
// or nil if t is not a persistable type.
func RequiredFields(t DocumentType) []string {
	fs, ok := requiredFields[t]
	if !ok {
		return nil
	}
	out := make([]string, len(fs))
	copy(out, fs)
	return out
}

// ParseDocumentType maps a free-form label onto the closed set. Unrecognized
// labels map to TypeUnknown.
func ParseDocumentType(s string) DocumentType {
	switch DocumentType(s) {
	case TypePassport, TypeDriversLicense, TypeEADCard:
		return DocumentType(s)
	}
	return TypeUnknown
}

// IsValid reports whether t is one of the persistable document types.
func (t DocumentType) IsValid() bool {
	_, ok := requiredFields[t]
	return ok
}

// DisplayName returns the human-facing label for t.
func (t DocumentType) DisplayName() string {
	switch t {
	case TypePassport:
		return "Passport"
	case TypeDriversLicense:
		return "Driver's License"
	case TypeEADCard:
		return "EAD Card"
	}
	return "Unknown"
}

// ReviewConfidenceThreshold is the confidence below which an uncorrected
// field is surfaced for review.
const ReviewConfidenceThreshold float32 = 0.5

// NotFound is the sentinel stored for required fields the recognizer could not
// locate. Downstream consumers always receive a renderable string.
const NotFound = "NOT_FOUND"
