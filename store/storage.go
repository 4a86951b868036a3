// Package store owns the merged product catalog: the immutable base list
// plus the durable custom list behind a pluggable storage port.
package store

import (
	"fmt"
	"sync"
)

// Storage is the raw persistence port for the custom product list. Load
// returns the stored bytes (nil when nothing has been stored yet); Save
// replaces the stored representation in full. Writers always rewrite the
// whole list from a fresh snapshot, so concurrent processes sharing one
// medium are last-writer-wins at whole-list granularity.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// MemoryStorage is an in-process Storage with no durability, used for the
// memory store kind and as a test double.
type MemoryStorage struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStorage constructs an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// compile-time assertion
var _ Storage = (*MemoryStorage)(nil)

func (s *MemoryStorage) Load() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, nil
}

func (s *MemoryStorage) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

// NewStorage constructs a Storage by kind: "memory" or "file".
// For file storage, provide the file path in path; for memory, path is ignored.
func NewStorage(kind, path string) (Storage, error) {
	switch kind {
	case "memory", "mem":
		return NewMemoryStorage(), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file storage")
		}
		return NewFileStorage(path), nil
	default:
		return nil, fmt.Errorf("unknown storage kind: %s", kind)
	}
}
