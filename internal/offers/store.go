package offers

import (
	"log"
	"sync"

	"PriceScout/internal/model"
)

// Store owns the currently displayed offer list with concurrency safety.
// The price-history engine mutates entries in place but provides no internal
// synchronization, so every merge against this list runs under the store's
// lock.
type Store struct {
	mu       sync.Mutex
	entries  []model.OfferEntry
	filePath string
}

// NewStore creates a Store, loading any persisted offer list from disk.
func NewStore(filePath string) (*Store, error) {
	entries, err := LoadEntries(filePath)
	if err != nil {
		return nil, err
	}
	return &Store{entries: entries, filePath: filePath}, nil
}

// Entries returns a copy of the current offer list.
func (s *Store) Entries() []model.OfferEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.OfferEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Replace swaps in a freshly fetched offer list, keeping LastUpdatedAt for
// retailers already known so a fetch without update records doesn't reset
// their history.
func (s *Store) Replace(entries []model.OfferEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]model.OfferEntry, len(s.entries))
	for _, e := range s.entries {
		known[e.RetailerID] = e
	}
	for i := range entries {
		if prev, ok := known[entries[i].RetailerID]; ok && entries[i].LastUpdatedAt.IsZero() {
			entries[i].LastUpdatedAt = prev.LastUpdatedAt
		}
	}
	s.entries = entries
	if err := s.save(); err != nil {
		log.Printf("[ERROR] failed to save offer list: %v", err)
	}
}

// Update runs fn against the live offer list under the store's lock and
// persists the result. fn mutates the slice elements in place.
func (s *Store) Update(fn func(entries []model.OfferEntry)) []model.OfferEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.entries)
	if err := s.save(); err != nil {
		log.Printf("[ERROR] failed to save offer list: %v", err)
	}
	out := make([]model.OfferEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) save() error {
	return SaveEntries(s.filePath, s.entries)
}
