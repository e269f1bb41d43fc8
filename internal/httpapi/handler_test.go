package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/idextract/internal/classify"
	"github.com/docuflow/idextract/internal/export"
	"github.com/docuflow/idextract/internal/extract"
	"github.com/docuflow/idextract/internal/fields"
	"github.com/docuflow/idextract/internal/imaging"
	"github.com/docuflow/idextract/internal/llm"
	"github.com/docuflow/idextract/internal/pipeline"
	"github.com/docuflow/idextract/internal/repository"
)

type stubRecognizer struct{}

func (stubRecognizer) Classify(ctx context.Context, req llm.ClassifyRequest) (llm.Classification, error) {
	return llm.Classification{DocumentType: "passport", Confidence: 0.95}, nil
}

func (stubRecognizer) Extract(ctx context.Context, req llm.ExtractRequest) (map[string]llm.ExtractedField, []byte, error) {
	out := make(map[string]llm.ExtractedField, len(req.FieldNames))
	for _, name := range req.FieldNames {
		v := "v-" + name
		out[name] = llm.ExtractedField{Value: &v, Confidence: 0.9}
	}
	return out, []byte(`{}`), nil
}

type hintRecognizer struct {
	stubRecognizer
	lastTextHint string
}

func (r *hintRecognizer) Classify(ctx context.Context, req llm.ClassifyRequest) (llm.Classification, error) {
	r.lastTextHint = req.TextHint
	return r.stubRecognizer.Classify(ctx, req)
}

type fakeStore struct{ images map[string][]byte }

func newFakeStore() *fakeStore { return &fakeStore{images: map[string][]byte{}} }

func (s *fakeStore) Save(id uuid.UUID, png []byte) (string, error) {
	ref := "/img/" + id.String() + ".png"
	s.images[ref] = png
	return ref, nil
}

func (s *fakeStore) Remove(ref string) error { delete(s.images, ref); return nil }

func (s *fakeStore) Read(ref string) ([]byte, error) {
	data, ok := s.images[ref]
	if !ok {
		return nil, assert.AnError
	}
	return data, nil
}

func newTestEnv(t *testing.T) (*httptest.Server, repository.DocumentRepository, *fakeStore) {
	t.Helper()
	return newTestEnvWithRecognizer(t, stubRecognizer{})
}

func newTestEnvWithRecognizer(t *testing.T, rec llm.Recognizer) (*httptest.Server, repository.DocumentRepository, *fakeStore) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	store := newFakeStore()
	proc := pipeline.NewProcessor(
		imaging.NewNormalizer(imaging.Config{}, nil),
		classify.New(rec, nil),
		extract.New(rec, extract.Config{}, nil),
		fields.NewNormalizer(nil),
		store,
		repo,
		nil,
	)
	h := NewHandler(proc, repo, store, export.NewService(repo, nil), nil)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, repo, store
}

func newTestServer(t *testing.T) (*httptest.Server, repository.DocumentRepository) {
	t.Helper()
	srv, repo, _ := newTestEnv(t)
	return srv, repo
}

func newTestServerWithStore(t *testing.T) (*httptest.Server, *fakeStore) {
	t.Helper()
	srv, _, store := newTestEnv(t)
	return srv, store
}

func uploadPNG(t *testing.T, srv *httptest.Server, filename string, w, h int) *http.Response {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 180, G: 180, B: 180, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/documents/", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func decodeDocument(t *testing.T, resp *http.Response) documentJSON {
	t.Helper()
	defer resp.Body.Close()
	var doc documentJSON
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	return doc
}

func TestUploadAndGet(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := uploadPNG(t, srv, "passport.png", 600, 400)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	doc := decodeDocument(t, resp)
	assert.Equal(t, "passport", doc.DocumentType)
	assert.Len(t, doc.Fields, 5)
	assert.False(t, doc.RequiresReview)

	getResp, err := http.Get(srv.URL + "/documents/" + doc.ID + "/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	got := decodeDocument(t, getResp)
	assert.Equal(t, doc.ID, got.ID)
}

func TestUploadForwardsTextHint(t *testing.T) {
	rec := &hintRecognizer{}
	srv, _, _ := newTestEnvWithRecognizer(t, rec)

	img := image.NewRGBA(image.Rect(0, 0, 600, 400))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "passport.png")
	require.NoError(t, err)
	_, err = part.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("text_hint", "EMPLOYMENT AUTHORIZATION"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/documents/", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, "EMPLOYMENT AUTHORIZATION", rec.lastTextHint)
}

func TestUploadTooSmallRejected(t *testing.T) {
	srv, repo := newTestServer(t)

	resp := uploadPNG(t, srv, "tiny.png", 400, 200)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	all, err := repo.List(context.Background(), repository.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetUnknownDocument(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/documents/" + uuid.NewString() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/documents/not-a-uuid/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCorrections(t *testing.T) {
	srv, _ := newTestServer(t)

	doc := decodeDocument(t, uploadPNG(t, srv, "passport.png", 600, 400))

	patch := func(body string) *http.Response {
		req, err := http.NewRequest(http.MethodPatch, srv.URL+"/documents/"+doc.ID+"/fields", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	resp := patch(`{"corrections":{"country":"USA"}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeDocument(t, resp)
	var country *fieldJSON
	for i := range updated.Fields {
		if updated.Fields[i].FieldName == "country" {
			country = &updated.Fields[i]
		}
	}
	require.NotNil(t, country)
	assert.True(t, country.Corrected)
	assert.Equal(t, "USA", country.EffectiveValue)

	// unknown field name fails the whole batch
	resp = patch(`{"corrections":{"country":"CAN","bogus":"x"}}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = patch(`{"corrections":{}}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateDocumentType(t *testing.T) {
	srv, _ := newTestServer(t)

	doc := decodeDocument(t, uploadPNG(t, srv, "passport.png", 600, 400))

	patch := func(body string) *http.Response {
		req, err := http.NewRequest(http.MethodPatch, srv.URL+"/documents/"+doc.ID+"/", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	resp := patch(`{"document_type":"drivers_license"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeDocument(t, resp)
	assert.Equal(t, "drivers_license", updated.DocumentType)
	// fields stay as extracted
	assert.Len(t, updated.Fields, 5)

	resp = patch(`{"document_type":"library_card"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteAndDeleteAll(t *testing.T) {
	srv, repo := newTestServer(t)

	doc := decodeDocument(t, uploadPNG(t, srv, "passport.png", 600, 400))

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/documents/"+doc.ID+"/", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// delete-all on the now-empty store still succeeds
	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/documents/", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 0, out["deleted_count"])

	all, err := repo.List(context.Background(), repository.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestServeImage(t *testing.T) {
	srv, _ := newTestServer(t)

	doc := decodeDocument(t, uploadPNG(t, srv, "passport.png", 600, 400))

	resp, err := http.Get(srv.URL + "/documents/" + doc.ID + "/image")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	cfg, err := png.DecodeConfig(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestServeImageMissingFromStore(t *testing.T) {
	srv, store := newTestServerWithStore(t)

	doc := decodeDocument(t, uploadPNG(t, srv, "passport.png", 600, 400))

	// the document row survives but its stored image is gone
	for ref := range store.images {
		delete(store.images, ref)
	}

	resp, err := http.Get(srv.URL + "/documents/" + doc.ID + "/image")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out["error"], "stored image unavailable")
}

func TestExportEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	decodeDocument(t, uploadPNG(t, srv, "passport.png", 600, 400))

	resp, err := http.Get(srv.URL + "/documents/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "documents.xlsx")
}
