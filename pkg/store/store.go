package store

import (
	"log"
	"sync"
	"time"

	"staffdir/pkg/domain"
)

// DefaultDebounce is the trailing-edge window that coalesces a burst of
// mutations into one durable write.
const DefaultDebounce = 250 * time.Millisecond

// Store is the owning record store: an ID-keyed collection plus the
// insertion order, guarded by a single lock. Mutations notify observers
// and reschedule the debounced persistence flush.
type Store struct {
	mu      sync.RWMutex
	records map[string]domain.Employee
	order   []string

	notifier *Notifier

	// Persistence
	persister domain.Persister
	debounce  time.Duration

	flushMu    sync.Mutex
	flushTimer *time.Timer
	closed     bool
}

// New creates a store. Without a persister the store is memory-only and
// flushes are skipped.
func New(options ...Option) *Store {
	s := &Store{
		records:  make(map[string]domain.Employee),
		notifier: NewNotifier(),
		debounce: DefaultDebounce,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Load replaces the collection with the persisted state. Called once at
// startup, before any observers are registered; a missing snapshot
// leaves the collection empty.
func (s *Store) Load() error {
	if s.persister == nil {
		return nil
	}

	records, err := s.persister.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]domain.Employee, len(records))
	s.order = make([]string, 0, len(records))
	for _, rec := range records {
		if _, exists := s.records[rec.ID]; exists {
			log.Printf("WARN: duplicate identifier %q in snapshot, keeping first occurrence", rec.ID)
			continue
		}
		s.records[rec.ID] = rec
		s.order = append(s.order, rec.ID)
	}

	log.Printf("INFO: Loaded %d employees from snapshot", len(s.order))
	return nil
}

// Subscribe registers a change observer invoked after every successful
// mutation, in registration order.
func (s *Store) Subscribe(fn func()) int {
	return s.notifier.Subscribe(fn)
}

// Unsubscribe removes a previously registered observer.
func (s *Store) Unsubscribe(id int) {
	s.notifier.Unsubscribe(id)
}

// Len returns the number of records in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// afterMutation runs the post-mutation side effects: one notification
// per mutation, then a rescheduled flush. Called without the lock held
// so observers can read a consistent snapshot.
func (s *Store) afterMutation() {
	s.notifier.Notify()
	s.scheduleFlush()
}
