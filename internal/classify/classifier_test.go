package classify

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

type stubRecognizer struct {
	resp llm.Classification
	err  error
}

func (s *stubRecognizer) Classify(ctx context.Context, req llm.ClassifyRequest) (llm.Classification, error) {
	return s.resp, s.err
}

func (s *stubRecognizer) Extract(ctx context.Context, req llm.ExtractRequest) (map[string]llm.ExtractedField, []byte, error) {
	return nil, nil, errors.New("not used")
}

func TestClassifyHappyPath(t *testing.T) {
	c := New(&stubRecognizer{resp: llm.Classification{DocumentType: "passport", Confidence: 0.95}}, nil)

	res, err := c.Classify(context.Background(), []byte("png"), "")
	require.NoError(t, err)
	assert.Equal(t, constants.TypePassport, res.DocumentType)
	assert.Equal(t, float32(0.95), res.Confidence)
}

func TestClassifyCapabilityFailure(t *testing.T) {
	c := New(&stubRecognizer{err: errors.New("connection refused")}, nil)

	_, err := c.Classify(context.Background(), []byte("png"), "")
	assert.ErrorIs(t, err, common.ErrClassificationUnavailable)
}

func TestClassifyMalformedResponse(t *testing.T) {
	c := New(&stubRecognizer{err: llm.ErrMalformedResponse}, nil)

	_, err := c.Classify(context.Background(), []byte("png"), "")
	assert.ErrorIs(t, err, common.ErrClassificationUnknown)
}

func TestClassifyOutOfSetType(t *testing.T) {
	c := New(&stubRecognizer{resp: llm.Classification{DocumentType: "library_card", Confidence: 0.9}}, nil)

	res, err := c.Classify(context.Background(), []byte("png"), "")
	assert.ErrorIs(t, err, common.ErrClassificationUnknown)
	assert.Equal(t, constants.TypeUnknown, res.DocumentType)
	assert.Zero(t, res.Confidence)
}

func TestClassifyTieBreakOnLowConfidence(t *testing.T) {
	c := New(&stubRecognizer{resp: llm.Classification{DocumentType: "drivers_license", Confidence: 0.3}}, nil)

	// a single strong cue overrides a low-confidence answer
	res, err := c.Classify(context.Background(), []byte("png"), "P<USASMITH<<JOHN<<<<")
	require.NoError(t, err)
	assert.Equal(t, constants.TypePassport, res.DocumentType)
}

func TestClassifyCueNeverOverridesConfidentAnswer(t *testing.T) {
	c := New(&stubRecognizer{resp: llm.Classification{DocumentType: "drivers_license", Confidence: 0.92}}, nil)

	res, err := c.Classify(context.Background(), []byte("png"), "P<USASMITH<<JOHN<<<<")
	require.NoError(t, err)
	assert.Equal(t, constants.TypeDriversLicense, res.DocumentType)
}

func TestClassifyConflictingCuesIgnored(t *testing.T) {
	c := New(&stubRecognizer{resp: llm.Classification{DocumentType: "ead_card", Confidence: 0.2}}, nil)

	res, err := c.Classify(context.Background(), []byte("png"), "PASSPORT EMPLOYMENT AUTHORIZATION")
	require.NoError(t, err)
	assert.Equal(t, constants.TypeEADCard, res.DocumentType)
}

func TestCueFromText(t *testing.T) {
	assert.Equal(t, constants.TypePassport, cueFromText("passport of the united states"))
	assert.Equal(t, constants.TypeDriversLicense, cueFromText("TEXAS DRIVER LICENSE CLASS C"))
	assert.Equal(t, constants.TypeEADCard, cueFromText("USCIS#: 123-456-789"))
	assert.Equal(t, constants.TypeUnknown, cueFromText(""))
	assert.Equal(t, constants.TypeUnknown, cueFromText("utility bill"))
}
