package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/common"
	"github.com/docuflow/idextract/internal/entity"
)

func passportRequest(filename string) *CreateDocumentRequest {
	fields := make([]entity.FinalField, 0, 5)
	for _, name := range constants.RequiredFields(constants.TypePassport) {
		fields = append(fields, entity.FinalField{Name: name, Value: "v-" + name, Confidence: 0.9})
	}
	return &CreateDocumentRequest{
		OriginalFilename: filename,
		StoredFileRef:    "/tmp/" + filename + ".png",
		DocumentType:     constants.TypePassport,
		Confidence:       0.95,
		Fields:           fields,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	doc, err := repo.Create(ctx, passportRequest("passport.jpg"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Len(t, doc.Fields, 5)
	assert.False(t, doc.CreatedAt.IsZero())

	got, err := repo.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, "passport.jpg", got.OriginalFilename)
	for i, name := range constants.RequiredFields(constants.TypePassport) {
		assert.Equal(t, name, got.Fields[i].FieldName)
		assert.False(t, got.Fields[i].Corrected)
	}

	_, err = repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, common.ErrDocumentNotFound)
}

func TestListNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		doc, err := repo.Create(ctx, passportRequest("p.jpg"))
		require.NoError(t, err)
		ids = append(ids, doc.ID)
		time.Sleep(2 * time.Millisecond)
	}

	all, err := repo.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[0], all[2].ID)

	page, err := repo.List(ctx, ListOptions{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)

	empty, err := repo.List(ctx, ListOptions{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestApplyCorrectionsAllOrNothing(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	doc, err := repo.Create(ctx, passportRequest("p.jpg"))
	require.NoError(t, err)

	// one bad name fails the whole batch and changes nothing
	_, err = repo.ApplyCorrections(ctx, doc.ID, map[string]string{
		"country": "USA",
		"no_such": "x",
	})
	assert.ErrorIs(t, err, common.ErrFieldNotFound)

	got, err := repo.Get(ctx, doc.ID)
	require.NoError(t, err)
	for _, f := range got.Fields {
		assert.False(t, f.Corrected, f.FieldName)
		assert.Nil(t, f.CorrectedValue, f.FieldName)
	}

	// partial correction of valid names touches only those fields
	updated, err := repo.ApplyCorrections(ctx, doc.ID, map[string]string{"country": "USA"})
	require.NoError(t, err)
	country := updated.FieldByName("country")
	require.NotNil(t, country)
	assert.True(t, country.Corrected)
	require.NotNil(t, country.CorrectedValue)
	assert.Equal(t, "USA", *country.CorrectedValue)
	assert.Equal(t, "v-country", country.OriginalValue)
	assert.Equal(t, "USA", country.EffectiveValue())

	full := updated.FieldByName("full_name")
	require.NotNil(t, full)
	assert.False(t, full.Corrected)

	assert.True(t, updated.UpdatedAt.After(doc.UpdatedAt) || updated.UpdatedAt.Equal(doc.UpdatedAt))

	_, err = repo.ApplyCorrections(ctx, uuid.New(), map[string]string{"country": "USA"})
	assert.ErrorIs(t, err, common.ErrDocumentNotFound)
}

func TestUpdateDocumentType(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	doc, err := repo.Create(ctx, passportRequest("p.jpg"))
	require.NoError(t, err)

	updated, err := repo.UpdateDocumentType(ctx, doc.ID, constants.TypeDriversLicense)
	require.NoError(t, err)
	assert.Equal(t, constants.TypeDriversLicense, updated.DocumentType)
	// fields stay as extracted, re-extraction does not happen
	assert.Len(t, updated.Fields, 5)
	assert.Equal(t, doc.Fields[0].OriginalValue, updated.Fields[0].OriginalValue)

	_, err = repo.UpdateDocumentType(ctx, doc.ID, constants.TypeUnknown)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = repo.UpdateDocumentType(ctx, uuid.New(), constants.TypePassport)
	assert.ErrorIs(t, err, common.ErrDocumentNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	doc, err := repo.Create(ctx, passportRequest("p.jpg"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, doc.ID))
	_, err = repo.Get(ctx, doc.ID)
	assert.ErrorIs(t, err, common.ErrDocumentNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, doc.ID), common.ErrDocumentNotFound)
}

func TestDeleteAll(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	// empty store still succeeds
	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, passportRequest("p.jpg"))
		require.NoError(t, err)
	}
	n, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := repo.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCloneIsolation(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	doc, err := repo.Create(ctx, passportRequest("p.jpg"))
	require.NoError(t, err)

	// mutating a returned document must not leak into the store
	doc.Fields[0].OriginalValue = "tampered"
	got, err := repo.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "v-full_name", got.Fields[0].OriginalValue)
}
