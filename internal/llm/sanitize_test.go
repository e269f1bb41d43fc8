package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFields(t *testing.T, raw []byte) map[string]ExtractedField {
	t.Helper()
	var out map[string]ExtractedField
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestSanitizeWrapsBareStrings(t *testing.T) {
	cleaned, adjusted, err := SanitizeExtractionJSON([]byte(`{"full_name":"John Smith"}`), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, adjusted)

	out := decodeFields(t, cleaned)
	require.Contains(t, out, "full_name")
	require.NotNil(t, out["full_name"].Value)
	assert.Equal(t, "John Smith", *out["full_name"].Value)
}

func TestSanitizeNotFoundBecomesNull(t *testing.T) {
	cleaned, _, err := SanitizeExtractionJSON([]byte(`{"country":"NOT_FOUND","issue_date":{"value":""}}`), nil)
	require.NoError(t, err)

	out := decodeFields(t, cleaned)
	assert.Nil(t, out["country"].Value)
	assert.Nil(t, out["issue_date"].Value)
}

func TestSanitizeStringConfidence(t *testing.T) {
	cleaned, adjusted, err := SanitizeExtractionJSON([]byte(`{"full_name":{"value":"Jane","confidence":"0.83"}}`), nil)
	require.NoError(t, err)
	assert.Contains(t, adjusted, "full_name(string-confidence)")

	out := decodeFields(t, cleaned)
	assert.InDelta(t, 0.83, out["full_name"].Confidence, 0.001)
}

func TestSanitizeDropsExtraObjectKeys(t *testing.T) {
	cleaned, _, err := SanitizeExtractionJSON([]byte(`{"full_name":{"value":"Jane","confidence":0.9,"reasoning":"seen top left"}}`), nil)
	require.NoError(t, err)

	var m map[string]map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.NotContains(t, m["full_name"], "reasoning")
}

func TestSanitizeKeepsAliasKeys(t *testing.T) {
	cleaned, _, err := SanitizeExtractionJSON([]byte(`{"surname":"Smith","dob":{"value":"01/02/1990","confidence":0.8}}`), nil)
	require.NoError(t, err)

	out := decodeFields(t, cleaned)
	assert.Contains(t, out, "surname")
	assert.Contains(t, out, "dob")
}

func TestSanitizeRejectsNonObject(t *testing.T) {
	_, _, err := SanitizeExtractionJSON([]byte(`["not","an","object"]`), nil)
	assert.Error(t, err)
}
