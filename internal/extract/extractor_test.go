package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/llm"
)

type fakeRecognizer struct {
	fields map[string]llm.ExtractedField
	err    error
}

func (f *fakeRecognizer) Classify(ctx context.Context, req llm.ClassifyRequest) (llm.Classification, error) {
	return llm.Classification{}, errors.New("not used")
}

func (f *fakeRecognizer) Extract(ctx context.Context, req llm.ExtractRequest) (map[string]llm.ExtractedField, []byte, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.fields, []byte(`{}`), nil
}

func strp(s string) *string { return &s }

func TestExtractDefensiveCompletion(t *testing.T) {
	rec := &fakeRecognizer{fields: map[string]llm.ExtractedField{
		"full_name":     {Value: strp("John Smith"), Confidence: 0.9},
		"date_of_birth": {Value: strp("15JAN1985"), Confidence: 0.3},
	}}
	e := New(rec, Config{}, nil)

	res, err := e.Extract(context.Background(), []byte("png"), constants.TypePassport)
	require.NoError(t, err)

	required := constants.RequiredFields(constants.TypePassport)
	require.Len(t, res.Fields, len(required))
	for i, name := range required {
		assert.Equal(t, name, res.Fields[i].Name)
	}

	assert.Equal(t, "John Smith", *res.Fields[0].Value)
	assert.Nil(t, res.Fields[2].Value) // country synthesized
	assert.Zero(t, res.Fields[2].Confidence)
	assert.Equal(t, []string{"date_of_birth"}, res.LowConfidence)
}

func TestExtractFoldsAliases(t *testing.T) {
	rec := &fakeRecognizer{fields: map[string]llm.ExtractedField{
		"dl_number": {Value: strp("D1234567"), Confidence: 0.9},
		"dob":       {Value: strp("03/04/1990"), Confidence: 0.9},
		"expiry":    {Value: strp("03/04/2030"), Confidence: 0.9},
		"issued_on": {Value: strp("03/04/2022"), Confidence: 0.9},
		"name":      {Value: strp("Smith, John"), Confidence: 0.8},
	}}
	e := New(rec, Config{}, nil)

	res, err := e.Extract(context.Background(), []byte("png"), constants.TypeDriversLicense)
	require.NoError(t, err)

	byName := map[string]*string{}
	for _, f := range res.Fields {
		byName[f.Name] = f.Value
	}
	require.NotNil(t, byName["license_number"])
	assert.Equal(t, "D1234567", *byName["license_number"])
	assert.Nil(t, byName["first_name"])
	assert.Nil(t, byName["last_name"])

	require.Contains(t, res.Extras, "full_name")
	assert.Equal(t, "Smith, John", *res.Extras["full_name"].Value)
}

func TestExtractFoldConflictsDeterministically(t *testing.T) {
	// dob and birthdate both fold onto date_of_birth; the higher-confidence
	// alias must win no matter how the response map iterates.
	rec := &fakeRecognizer{fields: map[string]llm.ExtractedField{
		"dob":       {Value: strp("04/03/1990"), Confidence: 0.4},
		"birthdate": {Value: strp("03/04/1990"), Confidence: 0.9},
	}}
	e := New(rec, Config{}, nil)

	for i := 0; i < 20; i++ {
		res, err := e.Extract(context.Background(), []byte("png"), constants.TypePassport)
		require.NoError(t, err)
		var dob *string
		for _, f := range res.Fields {
			if f.Name == "date_of_birth" {
				dob = f.Value
			}
		}
		require.NotNil(t, dob)
		assert.Equal(t, "03/04/1990", *dob)
	}

	// equal confidence breaks the tie on the alphabetically first alias
	rec.fields = map[string]llm.ExtractedField{
		"dob":       {Value: strp("04/03/1990"), Confidence: 0.8},
		"birthdate": {Value: strp("03/04/1990"), Confidence: 0.8},
	}
	for i := 0; i < 20; i++ {
		res, err := e.Extract(context.Background(), []byte("png"), constants.TypePassport)
		require.NoError(t, err)
		for _, f := range res.Fields {
			if f.Name == "date_of_birth" {
				require.NotNil(t, f.Value)
				assert.Equal(t, "03/04/1990", *f.Value)
			}
		}
	}

	// an exact canonical key beats any alias regardless of confidence
	rec.fields = map[string]llm.ExtractedField{
		"date_of_birth": {Value: strp("1990-03-04"), Confidence: 0.2},
		"birthdate":     {Value: strp("03/04/1990"), Confidence: 0.9},
	}
	res, err := e.Extract(context.Background(), []byte("png"), constants.TypePassport)
	require.NoError(t, err)
	for _, f := range res.Fields {
		if f.Name == "date_of_birth" {
			require.NotNil(t, f.Value)
			assert.Equal(t, "1990-03-04", *f.Value)
		}
	}
}

func TestExtractErrorMapping(t *testing.T) {
	e := New(&fakeRecognizer{err: errors.New("boom")}, Config{}, nil)
	_, err := e.Extract(context.Background(), []byte("png"), constants.TypePassport)
	assert.ErrorIs(t, err, common.ErrExtractionUnavailable)

	e = New(&fakeRecognizer{err: llm.ErrMalformedResponse}, Config{}, nil)
	_, err = e.Extract(context.Background(), []byte("png"), constants.TypePassport)
	assert.ErrorIs(t, err, common.ErrExtractionMalformed)

	_, err = e.Extract(context.Background(), []byte("png"), constants.TypeUnknown)
	assert.ErrorIs(t, err, common.ErrExtractionMalformed)
}
