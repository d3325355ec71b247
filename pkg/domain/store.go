package domain

// RecordStore owns the canonical ID-to-record collection. All other
// components read snapshots and never mutate the collection directly.
type RecordStore interface {
	// Add assigns a fresh identifier, inserts the record, and returns
	// the stored copy. Business-rule validation happens before the
	// store is reached; Add only guarantees identifier integrity.
	Add(partial Employee) (Employee, error)
	// Update replaces the stored record with the same ID entirely.
	// Returns ErrNotFound if the identifier is absent.
	Update(record Employee) error
	// Remove deletes the record if present; absent IDs are a no-op.
	Remove(id string)
	// GetAll returns a snapshot in insertion order, stable between
	// calls absent mutation.
	GetAll() []Employee
	// FindByID returns the record or ErrNotFound.
	FindByID(id string) (Employee, error)

	// Subscribe registers an observer invoked after every successful
	// mutation, in registration order. Unsubscribe removes it.
	Subscribe(fn func()) int
	Unsubscribe(id int)

	// SaveNow flushes the collection synchronously, bypassing the
	// debounce window. Used on graceful shutdown.
	SaveNow() error
	// Close stops the debounce timer. A pending flush is dropped.
	Close()
}

// Persister is the durable storage collaborator: one slot holding the
// whole collection as an ordered list of records.
type Persister interface {
	// Load returns the persisted records, or an empty slice when no
	// prior state exists.
	Load() ([]Employee, error)
	Save(records []Employee) error
}
