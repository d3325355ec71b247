package store

import (
	"time"

	"staffdir/pkg/domain"
)

type Option func(*Store)

// WithPersister sets the durable storage collaborator for the
// debounced flush.
func WithPersister(p domain.Persister) Option {
	return func(s *Store) {
		s.persister = p
	}
}

// WithDebounce overrides the persistence coalescing window.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.debounce = d
		}
	}
}
