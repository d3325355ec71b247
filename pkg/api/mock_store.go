package api

import (
	"fmt"
	"sync"

	"staffdir/pkg/domain"
)

// MockRecordStore provides a mock implementation of domain.RecordStore
// for testing. Identifiers are sequential for predictable assertions,
// and mutation calls are counted so tests can verify the store was not
// touched on a rejected request.
type MockRecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.Employee
	order   []string
	nextID  int

	observerID int
	observers  []func()

	addCalls    int
	updateCalls int
	removeCalls int
	saveCalls   int
}

// NewMockRecordStore creates an empty mock record store.
func NewMockRecordStore() *MockRecordStore {
	return &MockRecordStore{
		records: make(map[string]domain.Employee),
	}
}

// Add inserts the record under a sequential identifier.
func (m *MockRecordStore) Add(partial domain.Employee) (domain.Employee, error) {
	m.mu.Lock()
	m.addCalls++
	m.nextID++
	record := partial
	record.ID = fmt.Sprintf("%d", m.nextID)
	m.records[record.ID] = record
	m.order = append(m.order, record.ID)
	m.mu.Unlock()

	m.notify()
	return record, nil
}

// Update replaces the stored record entirely.
func (m *MockRecordStore) Update(record domain.Employee) error {
	m.mu.Lock()
	m.updateCalls++
	if _, exists := m.records[record.ID]; !exists {
		m.mu.Unlock()
		return fmt.Errorf("update %q: %w", record.ID, domain.ErrNotFound)
	}
	m.records[record.ID] = record
	m.mu.Unlock()

	m.notify()
	return nil
}

// Remove deletes the record if present; absent IDs are a no-op.
func (m *MockRecordStore) Remove(id string) {
	m.mu.Lock()
	m.removeCalls++
	if _, exists := m.records[id]; !exists {
		m.mu.Unlock()
		return
	}
	delete(m.records, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	m.notify()
}

// GetAll returns a snapshot in insertion order.
func (m *MockRecordStore) GetAll() []domain.Employee {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make([]domain.Employee, 0, len(m.order))
	for _, id := range m.order {
		snapshot = append(snapshot, m.records[id])
	}
	return snapshot
}

// FindByID returns the record or ErrNotFound.
func (m *MockRecordStore) FindByID(id string) (domain.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.records[id]
	if !exists {
		return domain.Employee{}, fmt.Errorf("find %q: %w", id, domain.ErrNotFound)
	}
	return record, nil
}

// Subscribe registers a change observer.
func (m *MockRecordStore) Subscribe(fn func()) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.observerID++
	m.observers = append(m.observers, fn)
	return m.observerID
}

// Unsubscribe is accepted but not tracked; mock tests replace the whole
// store rather than detaching observers.
func (m *MockRecordStore) Unsubscribe(id int) {}

// SaveNow counts the call and succeeds.
func (m *MockRecordStore) SaveNow() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	return nil
}

// Close is a no-op.
func (m *MockRecordStore) Close() {}

func (m *MockRecordStore) notify() {
	m.mu.RLock()
	current := append([]func(){}, m.observers...)
	m.mu.RUnlock()

	for _, fn := range current {
		fn()
	}
}

// AddCalls returns how many times Add was invoked.
func (m *MockRecordStore) AddCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.addCalls
}

// UpdateCalls returns how many times Update was invoked.
func (m *MockRecordStore) UpdateCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.updateCalls
}

// RemoveCalls returns how many times Remove was invoked.
func (m *MockRecordStore) RemoveCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.removeCalls
}
