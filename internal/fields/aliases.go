package fields

import (
	"strings"

	"github.com/docuflow/idextract/constants"
)

// Recognition output uses whatever label the document prints, so the same
// logical field arrives under many names. The alias tables fold those onto
// canonical names before required-field matching.
var generalAliases = map[string]string{
	"passport_number":     "document_number",
	"passport_no":         "document_number",
	"passportno":          "document_number",
	"surname":             "last_name",
	"given_names":         "first_name",
	"given_name":          "first_name",
	"name":                "full_name",
	"country_of_issuance": "nationality",
	"date_of_expiry":      "expiration_date",
	"expires":             "expiration_date",
	"expiry":              "expiration_date",
	"expiration":          "expiration_date",
	"expires_on":          "expiration_date",
	"expires_date":        "expiration_date",
	"date_of_issue":       "issue_date",
	"issued_on":           "issue_date",
	"issue":               "issue_date",
	"birthdate":           "date_of_birth",
	"birth_date":          "date_of_birth",
	"dob":                 "date_of_birth",
	"fname":               "first_name",
	"lname":               "last_name",
	"first":               "first_name",
	"last":                "last_name",
}

// document_number means the license number only on a driver's license;
// on a passport it stays its own field.
var licenseAliases = map[string]string{
	"license_no":             "license_number",
	"dl_number":              "license_number",
	"dl":                     "license_number",
	"driver_license_number":  "license_number",
	"drivers_license_number": "license_number",
	"operator_license":       "license_number",
	"document_number":        "license_number",
}

// EAD cards print a single expiry under several labels; all of them fold
// onto card_expires_date, including the generic expiration_date that other
// types keep as-is.
var eadAliases = map[string]string{
	"ead_number":                      "card_number",
	"card#":                           "card_number",
	"card_#":                          "card_number",
	"authorization_number":            "card_number",
	"employment_authorization_number": "card_number",
	"valid_until":                     "card_expires_date",
	"expiration_date":                 "card_expires_date",
	"date_of_expiry":                  "card_expires_date",
	"expires":                         "card_expires_date",
	"expiry":                          "card_expires_date",
	"expiration":                      "card_expires_date",
	"ead_category":                    "category",
	"class":                           "category",
}

// CanonicalName maps a free-form field name from the recognition capability
// onto its canonical name for the given document type. Unknown names pass
// through lowercased.
func CanonicalName(name string, docType constants.DocumentType) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")

	switch docType {
	case constants.TypeDriversLicense:
		if canon, ok := licenseAliases[key]; ok {
			return canon
		}
	case constants.TypeEADCard:
		if canon, ok := eadAliases[key]; ok {
			return canon
		}
		if key == "card_expires_date" {
			return key
		}
	}
	if canon, ok := generalAliases[key]; ok {
		return canon
	}
	return key
}
