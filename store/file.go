package store

import (
	"os"
	"path/filepath"
)

// FileStorage is a file-backed Storage. A missing file reads as empty, and
// writes go through a temp file plus rename so the stored list is replaced
// all-or-nothing.
type FileStorage struct {
	path string
}

// NewFileStorage constructs a FileStorage at the given path. The file is
// created lazily on first Save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// compile-time assertion
var _ Storage = (*FileStorage)(nil)

func (s *FileStorage) Load() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// no file yet; that's fine
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (s *FileStorage) Save(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
