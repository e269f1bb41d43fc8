package pipeline

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/classify"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/extract"
	"github.com/docuflow/idextract/internal/fields"
	"github.com/docuflow/idextract/internal/imaging"
	"github.com/docuflow/idextract/internal/llm"
	"github.com/docuflow/idextract/internal/repository"
)

type countingRecognizer struct {
	classifyCalls int
	extractCalls  int
	lastTextHint  string
}

func (r *countingRecognizer) Classify(ctx context.Context, req llm.ClassifyRequest) (llm.Classification, error) {
	r.classifyCalls++
	r.lastTextHint = req.TextHint
	return llm.Classification{DocumentType: "passport", Confidence: 0.95}, nil
}

func (r *countingRecognizer) Extract(ctx context.Context, req llm.ExtractRequest) (map[string]llm.ExtractedField, []byte, error) {
	r.extractCalls++
	out := make(map[string]llm.ExtractedField, len(req.FieldNames))
	for _, name := range req.FieldNames {
		v := "v-" + name
		if name == "date_of_birth" {
			v = "15JAN1985"
		}
		out[name] = llm.ExtractedField{Value: &v, Confidence: 0.9}
	}
	return out, []byte(`{}`), nil
}

type memStore struct {
	saved   map[string][]byte
	removed []string
}

func newMemStore() *memStore { return &memStore{saved: map[string][]byte{}} }

func (s *memStore) Save(id uuid.UUID, png []byte) (string, error) {
	ref := "/store/" + id.String() + ".png"
	s.saved[ref] = png
	return ref, nil
}

func (s *memStore) Remove(ref string) error {
	s.removed = append(s.removed, ref)
	delete(s.saved, ref)
	return nil
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newProcessor(rec llm.Recognizer, store ImageStore, repo repository.DocumentRepository) *Processor {
	return NewProcessor(
		imaging.NewNormalizer(imaging.Config{}, nil),
		classify.New(rec, nil),
		extract.New(rec, extract.Config{}, nil),
		fields.NewNormalizer(nil),
		store,
		repo,
		nil,
	)
}

func TestProcessCreatesDocument(t *testing.T) {
	rec := &countingRecognizer{}
	store := newMemStore()
	repo := repository.NewMemoryRepository()
	p := newProcessor(rec, store, repo)

	doc, err := p.Process(context.Background(), UploadRequest{
		Filename:  "passport.png",
		MediaType: constants.MediaPNG,
		Data:      encodePNG(t, 600, 400),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.TypePassport, doc.DocumentType)
	assert.Equal(t, float32(0.95), doc.Confidence)
	require.Len(t, doc.Fields, 5)
	dob := doc.FieldByName("date_of_birth")
	require.NotNil(t, dob)
	assert.Equal(t, "1985-01-15", dob.OriginalValue)
	assert.False(t, doc.RequiresReview())

	assert.Equal(t, 1, rec.classifyCalls)
	assert.Equal(t, 1, rec.extractCalls)
	assert.Len(t, store.saved, 1)
	assert.Equal(t, doc.StoredFileRef, firstKey(store.saved))

	got, err := repo.Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
}

func TestProcessForwardsTextHint(t *testing.T) {
	rec := &countingRecognizer{}
	p := newProcessor(rec, newMemStore(), repository.NewMemoryRepository())

	_, err := p.Process(context.Background(), UploadRequest{
		Filename:  "passport.png",
		MediaType: constants.MediaPNG,
		Data:      encodePNG(t, 600, 400),
		TextHint:  "P<USAEXAMPLE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<",
	})
	require.NoError(t, err)

	assert.Equal(t, "P<USAEXAMPLE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<", rec.lastTextHint)
}

func firstKey(m map[string][]byte) string {
	for k := range m {
		return k
	}
	return ""
}

func TestProcessRejectsSmallImageBeforeCapability(t *testing.T) {
	rec := &countingRecognizer{}
	store := newMemStore()
	repo := repository.NewMemoryRepository()
	p := newProcessor(rec, store, repo)

	_, err := p.Process(context.Background(), UploadRequest{
		Filename:  "tiny.png",
		MediaType: constants.MediaPNG,
		Data:      encodePNG(t, 400, 200),
	})
	assert.ErrorIs(t, err, common.ErrImageTooSmall)

	// nothing created, nothing stored, capability never called
	assert.Zero(t, rec.classifyCalls)
	assert.Zero(t, rec.extractCalls)
	assert.Empty(t, store.saved)
	all, lerr := repo.List(context.Background(), repository.ListOptions{})
	require.NoError(t, lerr)
	assert.Empty(t, all)
}

func TestProcessRejectsUnsupportedMediaType(t *testing.T) {
	rec := &countingRecognizer{}
	p := newProcessor(rec, newMemStore(), repository.NewMemoryRepository())

	_, err := p.Process(context.Background(), UploadRequest{
		Filename:  "doc.gif",
		MediaType: "image/gif",
		Data:      []byte("GIF89a"),
	})
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
	assert.Zero(t, rec.classifyCalls)
}

func TestProcessRejectsEmptyUpload(t *testing.T) {
	p := newProcessor(&countingRecognizer{}, newMemStore(), repository.NewMemoryRepository())
	_, err := p.Process(context.Background(), UploadRequest{
		Filename:  "empty.pdf",
		MediaType: constants.MediaPDF,
	})
	assert.ErrorIs(t, err, common.ErrEmptyDocument)
}

type failingRecognizer struct{ countingRecognizer }

func (r *failingRecognizer) Classify(ctx context.Context, req llm.ClassifyRequest) (llm.Classification, error) {
	r.classifyCalls++
	return llm.Classification{}, assert.AnError
}

func TestProcessCapabilityFailureCreatesNothing(t *testing.T) {
	rec := &failingRecognizer{}
	store := newMemStore()
	repo := repository.NewMemoryRepository()
	p := newProcessor(rec, store, repo)

	_, err := p.Process(context.Background(), UploadRequest{
		Filename:  "passport.png",
		MediaType: constants.MediaPNG,
		Data:      encodePNG(t, 600, 400),
	})
	assert.ErrorIs(t, err, common.ErrClassificationUnavailable)
	assert.Empty(t, store.saved)
	all, lerr := repo.List(context.Background(), repository.ListOptions{})
	require.NoError(t, lerr)
	assert.Empty(t, all)
}
