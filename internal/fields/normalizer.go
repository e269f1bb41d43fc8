package fields

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/entity"
)

// Normalizer is the last pipeline stage before persistence. It maps raw
// extracted values onto canonical, renderable field values: dates become ISO
// YYYY-MM-DD, a lone full_name is split when the schema wants separate name
// fields, and absent values become the NOT_FOUND sentinel.
//
// This stage never calls the recognition capability and never fails: a value
// that cannot be normalized is kept raw and flagged so a human can correct it.
type Normalizer struct {
	logger *slog.Logger
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

var dateFields = map[string]bool{
	"date_of_birth":     true,
	"issue_date":        true,
	"expiration_date":   true,
	"card_expires_date": true,
	"date_of_issue":     true,
	"date_of_expiry":    true,
	"valid_from":        true,
}

const requiredMissingMsg = "field is required"

// Normalize produces one FinalField per raw field, in the same order. extras
// carries canonical-named values the extractor received beyond the required
// list (typically full_name on a license, or surname/given names on a
// passport); they are consulted to fill required name fields but are never
// emitted themselves.
func (n *Normalizer) Normalize(docType constants.DocumentType, raw []entity.RawField, extras map[string]entity.RawField) []entity.FinalField {
	out := make([]entity.FinalField, 0, len(raw))
	for _, rf := range raw {
		out = append(out, n.normalizeOne(docType, rf, extras))
	}
	return out
}

func (n *Normalizer) normalizeOne(docType constants.DocumentType, rf entity.RawField, extras map[string]entity.RawField) entity.FinalField {
	value := ""
	if rf.Value != nil {
		value = strings.TrimSpace(*rf.Value)
	}
	confidence := rf.Confidence

	if value == "" || value == constants.NotFound {
		if filled, conf, ok := fillFromExtras(rf.Name, extras); ok {
			value, confidence = filled, conf
		}
	}

	if value == "" || value == constants.NotFound {
		msg := requiredMissingMsg
		n.logger.Warn("fields.missing", "document_type", docType, "field", rf.Name)
		return entity.FinalField{
			Name:         rf.Name,
			Value:        constants.NotFound,
			Confidence:   0,
			ErrorMessage: &msg,
		}
	}

	if dateFields[rf.Name] {
		iso, err := NormalizeDate(value)
		if err != nil {
			msg := fmt.Sprintf("unrecognized date format %q", value)
			n.logger.Warn("fields.date_unparsed", "field", rf.Name, "value", value)
			return entity.FinalField{
				Name:         rf.Name,
				Value:        value,
				Confidence:   confidence,
				ErrorMessage: &msg,
			}
		}
		value = iso
	}

	return entity.FinalField{Name: rf.Name, Value: value, Confidence: confidence}
}

// fillFromExtras backfills a missing required name field from whatever the
// capability did return: full_name splits into first/last, and a missing
// full_name is joined from first/last.
func fillFromExtras(name string, extras map[string]entity.RawField) (string, float32, bool) {
	extraVal := func(key string) (string, float32, bool) {
		ef, ok := extras[key]
		if !ok || ef.Value == nil {
			return "", 0, false
		}
		v := strings.TrimSpace(*ef.Value)
		if v == "" || v == constants.NotFound {
			return "", 0, false
		}
		return v, ef.Confidence, true
	}

	switch name {
	case "first_name", "last_name":
		full, conf, ok := extraVal("full_name")
		if !ok {
			return "", 0, false
		}
		first, last := SplitName(full)
		if name == "first_name" {
			if first == "" {
				return "", 0, false
			}
			return first, conf, true
		}
		if last == "" {
			return "", 0, false
		}
		return last, conf, true
	case "full_name":
		first, fc, fok := extraVal("first_name")
		last, lc, lok := extraVal("last_name")
		if !fok || !lok {
			return "", 0, false
		}
		conf := fc
		if lc < conf {
			conf = lc
		}
		return first + " " + last, conf, true
	}
	return "", 0, false
}

// SplitName splits a full name into first and last. A comma means the last
// name comes first ("Smith, John"); otherwise the final whitespace-delimited
// token is the last name and the remainder is the first name.
func SplitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	if before, after, ok := strings.Cut(full, ","); ok {
		return strings.TrimSpace(after), strings.TrimSpace(before)
	}
	idx := strings.LastIndexAny(full, " \t")
	if idx < 0 {
		return "", full
	}
	return strings.TrimSpace(full[:idx]), strings.TrimSpace(full[idx+1:])
}

var mrzDateRe = regexp.MustCompile(`^(\d{2})([A-Za-z]{3})(\d{4})$`)

// dateLayouts are tried in order. US documents print month first, so
// month-first layouts win over day-first readings of the same string.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"02 Jan 2006",
	"Jan 02, 2006",
	"January 2, 2006",
	"2006/01/02",
}

// NormalizeDate parses a locale-ambiguous date string and returns ISO
// YYYY-MM-DD. Passport-style compact dates like 15JAN1985 are recognized
// alongside the usual US month-first forms.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if m := mrzDateRe.FindStringSubmatch(s); m != nil {
		month := strings.ToUpper(m[2][:1]) + strings.ToLower(m[2][1:])
		t, err := time.Parse("02 Jan 2006", m[1]+" "+month+" "+m[3])
		if err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format %q", s)
}
