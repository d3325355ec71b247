package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Toggle(t *testing.T) {
	tr := NewTracker()

	tr.Toggle("a")
	assert.True(t, tr.Has("a"))
	assert.Equal(t, 1, tr.Count())

	tr.Toggle("a")
	assert.False(t, tr.Has("a"))
	assert.Equal(t, 0, tr.Count())
}

func TestTracker_SetMany(t *testing.T) {
	tr := NewTracker()

	tr.SetMany([]string{"a", "b", "c"}, true)
	assert.Equal(t, 3, tr.Count())

	// Selecting an already-selected id is idempotent
	tr.SetMany([]string{"b", "c", "d"}, true)
	assert.Equal(t, 4, tr.Count())

	tr.SetMany([]string{"a", "d"}, false)
	assert.Equal(t, []string{"b", "c"}, tr.IDs())

	// Deselecting an id that was never selected is a no-op
	tr.SetMany([]string{"zzz"}, false)
	assert.Equal(t, 2, tr.Count())
}

func TestTracker_Prune(t *testing.T) {
	tr := NewTracker()
	tr.SetMany([]string{"a", "b", "c"}, true)

	tr.Prune([]string{"a", "c", "x", "y"})

	assert.Equal(t, []string{"a", "c"}, tr.IDs())
	assert.False(t, tr.Has("b"))
}

func TestTracker_PruneAgainstEmptyCollectionClearsAll(t *testing.T) {
	tr := NewTracker()
	tr.SetMany([]string{"a", "b"}, true)

	tr.Prune(nil)

	assert.Zero(t, tr.Count())
	assert.Empty(t, tr.IDs())
}

func TestTracker_IDsAreSortedAndDetached(t *testing.T) {
	tr := NewTracker()
	tr.SetMany([]string{"c", "a", "b"}, true)

	ids := tr.IDs()
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	ids[0] = "mutated"
	assert.True(t, tr.Has("a"), "mutating the returned slice must not affect the tracker")
}

// The tracker knows nothing about filters or pages: ids it holds stay
// selected regardless of what any derived view currently shows.
func TestTracker_SelectionOutlivesDerivedViews(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("hidden-by-filter")

	// No call made while the record is filtered out or on another page;
	// the selection is only pruned when the record itself is gone.
	assert.True(t, tr.Has("hidden-by-filter"))

	tr.Prune([]string{"hidden-by-filter"})
	assert.True(t, tr.Has("hidden-by-filter"))
}
