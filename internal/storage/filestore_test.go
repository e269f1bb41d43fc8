package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveReadRemove(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)

	id := uuid.New()
	ref, err := store.Save(id, []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, id.String()+".png", filepath.Base(ref))

	data, err := store.Read(ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Remove(ref))
	_, err = store.Read(ref)
	assert.Error(t, err)

	// removing twice is fine
	assert.NoError(t, store.Remove(ref))
}

func TestRejectsReferencesOutsideStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = store.Read("/etc/passwd")
	assert.Error(t, err)
	assert.Error(t, store.Remove("/etc/shadow"))
}
