package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/entity"
)

func strp(s string) *string { return &s }

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name    string
		docType constants.DocumentType
		want    string
	}{
		{"surname", constants.TypePassport, "last_name"},
		{"Given_Names", constants.TypePassport, "first_name"},
		{"dob", constants.TypeDriversLicense, "date_of_birth"},
		{"DL Number", constants.TypeDriversLicense, "license_number"},
		{"document_number", constants.TypeDriversLicense, "license_number"},
		{"document_number", constants.TypePassport, "document_number"},
		{"expiration_date", constants.TypeDriversLicense, "expiration_date"},
		{"expiration_date", constants.TypeEADCard, "card_expires_date"},
		{"card_expires_date", constants.TypeEADCard, "card_expires_date"},
		{"ead_number", constants.TypeEADCard, "card_number"},
		{"class", constants.TypeEADCard, "category"},
		{"name", constants.TypePassport, "full_name"},
		{"something_else", constants.TypePassport, "something_else"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CanonicalName(tc.name, tc.docType), "%s/%s", tc.name, tc.docType)
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"03/04/1990":      "1990-03-04",
		"3/4/1990":        "1990-03-04",
		"03-04-1990":      "1990-03-04",
		"1990-03-04":      "1990-03-04",
		"15JAN1985":       "1985-01-15",
		"01FEB2020":       "2020-02-01",
		"15 Jan 1985":     "1985-01-15",
		"Jan 15, 1985":    "1985-01-15",
		"January 5, 1985": "1985-01-05",
	}
	for in, want := range cases {
		got, err := NormalizeDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := NormalizeDate("next tuesday")
	assert.Error(t, err)
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("Smith, John")
	assert.Equal(t, "John", first)
	assert.Equal(t, "Smith", last)

	first, last = SplitName("John Michael Smith")
	assert.Equal(t, "John Michael", first)
	assert.Equal(t, "Smith", last)

	first, last = SplitName("Cher")
	assert.Equal(t, "", first)
	assert.Equal(t, "Cher", last)
}

func TestNormalizeDatesAndSentinel(t *testing.T) {
	n := NewNormalizer(nil)

	raw := []entity.RawField{
		{Name: "full_name", Value: strp("John Smith"), Confidence: 0.9},
		{Name: "date_of_birth", Value: strp("15JAN1985"), Confidence: 0.8},
		{Name: "country", Value: nil},
		{Name: "issue_date", Value: strp("not a date"), Confidence: 0.7},
		{Name: "expiration_date", Value: strp("01/30/2030"), Confidence: 0.95},
	}
	out := n.Normalize(constants.TypePassport, raw, nil)
	require.Len(t, out, 5)

	assert.Equal(t, "John Smith", out[0].Value)
	assert.Nil(t, out[0].ErrorMessage)

	assert.Equal(t, "1985-01-15", out[1].Value)

	assert.Equal(t, constants.NotFound, out[2].Value)
	require.NotNil(t, out[2].ErrorMessage)
	assert.Equal(t, "field is required", *out[2].ErrorMessage)
	assert.Zero(t, out[2].Confidence)

	// unparsable date keeps the raw value and is flagged, never dropped
	assert.Equal(t, "not a date", out[3].Value)
	assert.NotNil(t, out[3].ErrorMessage)
	assert.Equal(t, float32(0.7), out[3].Confidence)

	assert.Equal(t, "2030-01-30", out[4].Value)
}

func TestNormalizeNameBackfill(t *testing.T) {
	n := NewNormalizer(nil)

	// license with only a full_name extra: first/last are derived from it
	raw := []entity.RawField{
		{Name: "first_name", Value: nil},
		{Name: "last_name", Value: nil},
	}
	extras := map[string]entity.RawField{
		"full_name": {Name: "full_name", Value: strp("Smith, John"), Confidence: 0.85},
	}
	out := n.Normalize(constants.TypeDriversLicense, raw, extras)
	require.Len(t, out, 2)
	assert.Equal(t, "John", out[0].Value)
	assert.Equal(t, "Smith", out[1].Value)
	assert.Equal(t, float32(0.85), out[0].Confidence)

	// passport with separate name parts: full_name is joined
	raw = []entity.RawField{{Name: "full_name", Value: nil}}
	extras = map[string]entity.RawField{
		"first_name": {Name: "first_name", Value: strp("John"), Confidence: 0.9},
		"last_name":  {Name: "last_name", Value: strp("Smith"), Confidence: 0.8},
	}
	out = n.Normalize(constants.TypePassport, raw, extras)
	require.Len(t, out, 1)
	assert.Equal(t, "John Smith", out[0].Value)
	assert.Equal(t, float32(0.8), out[0].Confidence)
}
