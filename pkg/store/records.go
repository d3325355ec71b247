package store

import (
	"fmt"

	"github.com/google/uuid"

	"staffdir/pkg/domain"
)

// Add assigns a fresh unique identifier, inserts the record, and
// returns the stored copy. Any identifier on the input is discarded;
// identifiers are assigned here and never reused.
func (s *Store) Add(partial domain.Employee) (domain.Employee, error) {
	record := partial
	record.ID = uuid.NewString()

	s.mu.Lock()
	s.records[record.ID] = record
	s.order = append(s.order, record.ID)
	s.mu.Unlock()

	s.afterMutation()
	return record, nil
}

// Update replaces the stored record with the same identifier entirely.
// This is a full replacement, not a merge.
func (s *Store) Update(record domain.Employee) error {
	s.mu.Lock()
	if _, exists := s.records[record.ID]; !exists {
		s.mu.Unlock()
		return fmt.Errorf("update %q: %w", record.ID, domain.ErrNotFound)
	}
	s.records[record.ID] = record
	s.mu.Unlock()

	s.afterMutation()
	return nil
}

// Remove deletes the record with the given identifier. An absent
// identifier is a no-op: nothing is persisted and no observers fire.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	if _, exists := s.records[id]; !exists {
		s.mu.Unlock()
		return
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.afterMutation()
}

// GetAll returns a snapshot of the collection in insertion order. The
// slice is freshly allocated and the records are copies; callers may
// not mutate the collection through it.
func (s *Store) GetAll() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Employee, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, s.records[id])
	}
	return snapshot
}

// FindByID returns the record with the given identifier.
func (s *Store) FindByID(id string) (domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.records[id]
	if !exists {
		return domain.Employee{}, fmt.Errorf("find %q: %w", id, domain.ErrNotFound)
	}
	return record, nil
}
