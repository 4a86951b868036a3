package store

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/atripati/altetudegear/domain"
)

// Store composes the immutable base catalog with the durable custom list.
// The merged view is base ++ custom, recomputed on every read; the custom
// list is reloaded from storage each time so readers see the latest
// persisted state. All writes are whole-list replacements computed from a
// snapshot read under the same lock.
type Store struct {
	mu        sync.RWMutex
	base      []domain.Product
	baseSlugs map[string]struct{}
	storage   Storage
}

// New constructs a Store over the given base catalog and storage port.
func New(base []domain.Product, storage Storage) *Store {
	slugs := make(map[string]struct{}, len(base))
	for _, p := range base {
		slugs[p.Slug] = struct{}{}
	}
	return &Store{
		base:      base,
		baseSlugs: slugs,
		storage:   storage,
	}
}

// loadCustom reads the persisted custom list. Unavailable or corrupt stored
// data fails open to an empty list; losing unreadable records beats taking
// the whole catalog down.
func (s *Store) loadCustom() []domain.Product {
	b, err := s.storage.Load()
	if err != nil {
		slog.Warn("custom product storage unreadable, treating as empty", "error", err)
		return nil
	}
	if len(b) == 0 {
		return nil
	}
	var list []domain.Product
	if err := json.Unmarshal(b, &list); err != nil {
		slog.Warn("custom product storage corrupt, treating as empty", "error", err)
		return nil
	}
	return list
}

func (s *Store) saveCustom(list []domain.Product) error {
	if list == nil {
		list = []domain.Product{}
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return s.storage.Save(b)
}

// Base returns the immutable base catalog.
func (s *Store) Base() []domain.Product {
	return s.base
}

// Custom returns the current custom products in storage order.
func (s *Store) Custom() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadCustom()
}

// Merged returns base products first, in declared order, followed by custom
// products in storage order. De-duplication is a write-time concern and is
// not re-checked here.
func (s *Store) Merged() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	custom := s.loadCustom()
	out := make([]domain.Product, 0, len(s.base)+len(custom))
	out = append(out, s.base...)
	out = append(out, custom...)
	return out
}

// BySlug looks up a product in the merged catalog by slug.
func (s *Store) BySlug(slug string) (domain.Product, bool) {
	for _, p := range s.Merged() {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ByID looks up a product in the merged catalog by id.
func (s *Store) ByID(id string) (domain.Product, bool) {
	for _, p := range s.Merged() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// HasBaseSlug reports whether slug is reserved by a base product.
func (s *Store) HasBaseSlug(slug string) bool {
	_, ok := s.baseSlugs[slug]
	return ok
}

// UpsertCustom validates product and writes it to the custom list,
// replacing any existing custom entry that matches by id or by slug. Base
// slugs are permanently reserved and always rejected. Nothing is written
// when validation or the collision check fails.
func (s *Store) UpsertCustom(product domain.Product) error {
	if result := domain.Validate(product); !result.Valid {
		return domain.NewInvalidProductError(result.Errors)
	}
	if s.HasBaseSlug(product.Slug) {
		return domain.NewSlugConflictError(product.Slug)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	custom := s.loadCustom()
	next := make([]domain.Product, 0, len(custom)+1)
	for _, p := range custom {
		if p.ID == product.ID || p.Slug == product.Slug {
			continue
		}
		next = append(next, p)
	}
	next = append(next, product)
	return s.saveCustom(next)
}

// DeleteCustom removes the custom entry with the given slug. It reports
// whether a removal occurred; a missing slug is a no-op, not an error.
func (s *Store) DeleteCustom(slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	custom := s.loadCustom()
	next := make([]domain.Product, 0, len(custom))
	removed := false
	for _, p := range custom {
		if p.Slug == slug {
			removed = true
			continue
		}
		next = append(next, p)
	}
	if !removed {
		return false, nil
	}
	return true, s.saveCustom(next)
}

// ClearCustom empties and persists an empty custom list.
func (s *Store) ClearCustom() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveCustom(nil)
}

// MergeCustom commits an accepted import batch in a single write: existing
// custom entries whose slug matches an accepted record are dropped, then
// all accepted records are appended. Callers are responsible for having
// validated and collision-checked the batch.
func (s *Store) MergeCustom(accepted []domain.Product) error {
	if len(accepted) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := make(map[string]struct{}, len(accepted))
	for _, p := range accepted {
		replaced[p.Slug] = struct{}{}
	}

	custom := s.loadCustom()
	next := make([]domain.Product, 0, len(custom)+len(accepted))
	for _, p := range custom {
		if _, ok := replaced[p.Slug]; ok {
			continue
		}
		next = append(next, p)
	}
	next = append(next, accepted...)
	return s.saveCustom(next)
}
