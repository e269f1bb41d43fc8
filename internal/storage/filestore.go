package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore keeps normalized document images on disk for later display and
// audit. References handed out are absolute paths inside the store directory.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", abs, err)
	}
	return &FileStore{dir: abs, logger: logger}, nil
}

// Save writes the normalized PNG under the document's id and returns the
// stored reference.
func (s *FileStore) Save(id uuid.UUID, png []byte) (string, error) {
	ref := filepath.Join(s.dir, id.String()+".png")
	if err := os.WriteFile(ref, png, 0o644); err != nil {
		s.logger.Error("storage.save_failed", "ref", ref, "error", err)
		return "", err
	}
	s.logger.Debug("storage.saved", "ref", ref, "bytes", len(png))
	return ref, nil
}

// Read returns the stored bytes for a reference produced by Save. Reads are
// restricted to the store directory.
func (s *FileStore) Read(ref string) ([]byte, error) {
	if filepath.Dir(ref) != s.dir {
		return nil, fmt.Errorf("reference %q is outside the store", ref)
	}
	return os.ReadFile(ref)
}

// Remove deletes a stored image. Missing files are not an error; the
// database row is the source of truth and the image is best-effort.
func (s *FileStore) Remove(ref string) error {
	if filepath.Dir(ref) != s.dir {
		return fmt.Errorf("reference %q is outside the store", ref)
	}
	err := os.Remove(ref)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
