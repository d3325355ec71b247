package store

import (
	"log"
	"time"
)

// scheduleFlush cancels any pending flush and schedules a new one at
// the end of the debounce window (trailing-edge coalescing). A burst of
// N mutations inside the window produces exactly one durable write
// reflecting the state after the Nth mutation.
func (s *Store) scheduleFlush() {
	if s.persister == nil {
		return
	}

	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	if s.closed {
		return
	}
	if s.flushTimer != nil {
		s.flushTimer.Stop()
	}
	s.flushTimer = time.AfterFunc(s.debounce, s.flush)
}

// flush writes the current snapshot. A failed write is logged and never
// rolls back the in-memory state; the next mutation's debounce cycle
// retries with a fresh snapshot.
func (s *Store) flush() {
	start := time.Now()
	snapshot := s.GetAll()

	if err := s.persister.Save(snapshot); err != nil {
		log.Printf("ERROR: Failed to persist %d employees: %v", len(snapshot), err)
		return
	}

	log.Printf("DEBUG: Persisted %d employees in %v", len(snapshot), time.Since(start))
}

// SaveNow flushes synchronously, bypassing the debounce window, and
// cancels any pending timer. Used on graceful shutdown.
func (s *Store) SaveNow() error {
	if s.persister == nil {
		return nil
	}

	s.flushMu.Lock()
	if s.flushTimer != nil {
		s.flushTimer.Stop()
		s.flushTimer = nil
	}
	s.flushMu.Unlock()

	return s.persister.Save(s.GetAll())
}

// Close stops the debounce timer. A write still pending inside the
// window is dropped; callers that need it must SaveNow first.
func (s *Store) Close() {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.closed = true
	if s.flushTimer != nil {
		s.flushTimer.Stop()
		s.flushTimer = nil
	}
}
