package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/llm"
)

func chatResponse(t *testing.T, content any) []byte {
	t.Helper()
	var text string
	switch v := content.(type) {
	case string:
		text = v
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		text = string(b)
	}
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": text}},
		},
	})
	require.NoError(t, err)
	return body
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}, nil)
}

func TestClassify(t *testing.T) {
	var gotAuth atomic.Value
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		assert.Equal(t, "/chat/completions", r.URL.Path)
		_, _ = w.Write(chatResponse(t, map[string]any{
			"document_type": "Passport",
			"confidence":    0.93,
		}))
	})

	out, err := c.Classify(context.Background(), llm.ClassifyRequest{ImagePNG: []byte("png")})
	require.NoError(t, err)
	assert.Equal(t, "passport", out.DocumentType)
	assert.InDelta(t, 0.93, out.Confidence, 0.001)
	assert.Equal(t, "Bearer test-key", gotAuth.Load())
}

func TestClassifyMalformedContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, "I could not classify this document."))
	})

	_, err := c.Classify(context.Background(), llm.ClassifyRequest{ImagePNG: []byte("png")})
	assert.ErrorIs(t, err, llm.ErrMalformedResponse)
}

func TestExtract(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, map[string]any{
			"full_name":     map[string]any{"value": "John Smith", "confidence": 0.92},
			"date_of_birth": map[string]any{"value": nil, "confidence": 0},
		}))
	})

	out, raw, err := c.Extract(context.Background(), llm.ExtractRequest{
		ImagePNG:     []byte("png"),
		DocumentType: constants.TypePassport,
		FieldNames:   []string{"full_name", "date_of_birth"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	require.NotNil(t, out["full_name"].Value)
	assert.Equal(t, "John Smith", *out["full_name"].Value)
	assert.Nil(t, out["date_of_birth"].Value)
}

func TestExtractSanitizesLenientShapes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, map[string]any{
			"full_name":     "John Smith",
			"date_of_birth": "NOT_FOUND",
		}))
	})

	out, _, err := c.Extract(context.Background(), llm.ExtractRequest{
		ImagePNG:     []byte("png"),
		DocumentType: constants.TypePassport,
		FieldNames:   []string{"full_name", "date_of_birth"},
	})
	require.NoError(t, err)
	require.NotNil(t, out["full_name"].Value)
	assert.Equal(t, "John Smith", *out["full_name"].Value)
	assert.Nil(t, out["date_of_birth"].Value)
}

func TestExtractUnsalvageableResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, "not json at all"))
	})

	_, _, err := c.Extract(context.Background(), llm.ExtractRequest{
		ImagePNG:     []byte("png"),
		DocumentType: constants.TypePassport,
		FieldNames:   []string{"full_name"},
	})
	assert.ErrorIs(t, err, llm.ErrMalformedResponse)
}

func TestRetryOnceOnTransientFailure(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(chatResponse(t, map[string]any{
			"document_type": "passport",
			"confidence":    0.9,
		}))
	})

	out, err := c.Classify(context.Background(), llm.ClassifyRequest{ImagePNG: []byte("png")})
	require.NoError(t, err)
	assert.Equal(t, "passport", out.DocumentType)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNoRetryOnPermanentFailure(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := c.Classify(context.Background(), llm.ClassifyRequest{ImagePNG: []byte("png")})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var se *llm.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.False(t, se.Transient())
}

func TestSingleRetryOnPersistentTransientFailure(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "still overloaded", http.StatusServiceUnavailable)
	})

	_, err := c.Classify(context.Background(), llm.ClassifyRequest{ImagePNG: []byte("png")})
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
