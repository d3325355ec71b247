// Package selection tracks which employee identifiers are selected in
// the UI. The set holds identifiers, not record copies, so it stays
// valid when a record's contents change and only deletion invalidates
// an entry. Filtering and paging never touch it.
package selection

import (
	"sort"
	"sync"
)

// Tracker is a concurrency-safe set of selected identifiers.
type Tracker struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{ids: make(map[string]struct{})}
}

// Toggle flips membership of the given identifier.
func (t *Tracker) Toggle(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, selected := t.ids[id]; selected {
		delete(t.ids, id)
	} else {
		t.ids[id] = struct{}{}
	}
}

// SetMany adds or removes every given identifier according to selected.
// Used for the select-all checkbox over the current page.
func (t *Tracker) SetMany(ids []string, selected bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range ids {
		if selected {
			t.ids[id] = struct{}{}
		} else {
			delete(t.ids, id)
		}
	}
}

// Prune drops every selected identifier not present in validIDs. Called
// after deletions so stale identifiers never linger.
func (t *Tracker) Prune(validIDs []string) {
	valid := make(map[string]struct{}, len(validIDs))
	for _, id := range validIDs {
		valid[id] = struct{}{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for id := range t.ids {
		if _, ok := valid[id]; !ok {
			delete(t.ids, id)
		}
	}
}

// Has reports whether the identifier is selected.
func (t *Tracker) Has(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, selected := t.ids[id]
	return selected
}

// IDs returns the selected identifiers, sorted for stable output.
func (t *Tracker) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.ids))
	for id := range t.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of selected identifiers.
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ids)
}
