package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/docuflow/idextract/constants"
)

// SanitizeExtractionJSON repairs the shapes models commonly get wrong before
// strict schema validation:
//   - a bare string where {"value": ...} was requested
//   - "" or the NOT_FOUND literal instead of a null value
//   - confidence encoded as a string
//
// Alias keys outside the requested set are kept (shaped the same way) for the
// field normalizer to fold. Returns the cleaned JSON and the adjustments made.
func SanitizeExtractionJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	adjusted := make([]string, 0, 4)
	for k, v := range m {
		switch t := v.(type) {
		case string:
			m[k] = wrapValue(t)
			adjusted = append(adjusted, k+"(bare-string)")
		case nil:
			m[k] = map[string]any{"value": nil}
			adjusted = append(adjusted, k+"(null)")
		case map[string]any:
			if changed := sanitizeFieldObject(t); changed != "" {
				adjusted = append(adjusted, k+"("+changed+")")
			}
		default:
			// number/bool where an object was requested: stringify the value
			m[k] = wrapValue(fmt.Sprint(t))
			adjusted = append(adjusted, k+"(coerced)")
		}
	}

	if len(adjusted) > 0 {
		logger.Debug("llm.sanitize.adjusted", "adjustments", adjusted)
	}
	out, err := json.Marshal(m)
	if err != nil {
		return nil, adjusted, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, adjusted, nil
}

func wrapValue(s string) map[string]any {
	s = strings.TrimSpace(s)
	if s == "" || s == constants.NotFound {
		return map[string]any{"value": nil}
	}
	return map[string]any{"value": s}
}

func sanitizeFieldObject(obj map[string]any) string {
	changed := ""
	if v, ok := obj["value"].(string); ok {
		s := strings.TrimSpace(v)
		if s == "" || s == constants.NotFound {
			obj["value"] = nil
			changed = "empty-value"
		} else if s != v {
			obj["value"] = s
		}
	}
	if c, ok := obj["confidence"].(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(c), 64); err == nil {
			obj["confidence"] = f
			if changed != "" {
				changed += ",string-confidence"
			} else {
				changed = "string-confidence"
			}
		} else {
			delete(obj, "confidence")
			changed = "bad-confidence"
		}
	}
	for k := range obj {
		if k != "value" && k != "confidence" {
			delete(obj, k)
			if changed == "" {
				changed = "extra-keys"
			}
		}
	}
	return changed
}
