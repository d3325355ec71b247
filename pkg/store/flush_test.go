package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdir/pkg/domain"
)

const testDebounce = 30 * time.Millisecond

func TestStore_DebounceCoalescesBurstIntoOneWrite(t *testing.T) {
	persister := &fakePersister{}
	s := New(WithPersister(persister), WithDebounce(testDebounce))
	defer s.Close()

	// Five mutations well inside one debounce window
	for i := 0; i < 5; i++ {
		_, err := s.Add(testEmployee(i))
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool {
		_, saves, _ := persister.stats()
		return saves == 1
	}, 2*time.Second, 5*time.Millisecond, "burst should flush exactly once")

	_, saves, last := persister.stats()
	assert.Equal(t, 1, saves)
	assert.Len(t, last, 5, "the single write reflects the state after the last mutation")

	// The window is over; no further writes without further mutations
	time.Sleep(4 * testDebounce)
	_, saves, _ = persister.stats()
	assert.Equal(t, 1, saves)
}

func TestStore_MutationAfterWindowFlushesAgain(t *testing.T) {
	persister := &fakePersister{}
	s := New(WithPersister(persister), WithDebounce(testDebounce))
	defer s.Close()

	_, err := s.Add(testEmployee(1))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, saves, _ := persister.stats()
		return saves == 1
	}, 2*time.Second, 5*time.Millisecond)

	_, err = s.Add(testEmployee(2))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, saves, _ := persister.stats()
		return saves == 2
	}, 2*time.Second, 5*time.Millisecond)

	_, _, last := persister.stats()
	assert.Len(t, last, 2)
}

func TestStore_FailedWriteKeepsStateAndRetriesNextCycle(t *testing.T) {
	persister := &fakePersister{
		failures: 1,
		saveErr:  errors.New("disk full"),
	}
	s := New(WithPersister(persister), WithDebounce(testDebounce))
	defer s.Close()

	rec, err := s.Add(testEmployee(1))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		attempts, _, _ := persister.stats()
		return attempts == 1
	}, 2*time.Second, 5*time.Millisecond, "first flush attempt should happen and fail")

	// In-memory state is never rolled back by a failed write
	got, err := s.FindByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	// The next mutation's cycle retries with the fresh snapshot
	_, err = s.Add(testEmployee(2))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, saves, _ := persister.stats()
		return saves == 1
	}, 2*time.Second, 5*time.Millisecond)

	_, _, last := persister.stats()
	assert.Len(t, last, 2)
}

func TestStore_SaveNowBypassesDebounce(t *testing.T) {
	persister := &fakePersister{}
	s := New(WithPersister(persister), WithDebounce(time.Hour))
	defer s.Close()

	_, err := s.Add(testEmployee(1))
	require.NoError(t, err)

	require.NoError(t, s.SaveNow())

	_, saves, last := persister.stats()
	assert.Equal(t, 1, saves)
	assert.Len(t, last, 1)

	// The pending timer was cancelled; no second write follows
	time.Sleep(4 * testDebounce)
	_, saves, _ = persister.stats()
	assert.Equal(t, 1, saves)
}

func TestStore_SaveNowPropagatesPersistError(t *testing.T) {
	persister := &fakePersister{
		failures: 1,
		saveErr:  domain.ErrPersistence,
	}
	s := New(WithPersister(persister))
	defer s.Close()

	err := s.SaveNow()
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestStore_CloseDropsPendingFlush(t *testing.T) {
	persister := &fakePersister{}
	s := New(WithPersister(persister), WithDebounce(testDebounce))

	_, err := s.Add(testEmployee(1))
	require.NoError(t, err)
	s.Close()

	time.Sleep(4 * testDebounce)
	_, saves, _ := persister.stats()
	assert.Equal(t, 0, saves)
}

func TestStore_MemoryOnlyStoreNeverFlushes(t *testing.T) {
	s := New(WithDebounce(time.Millisecond))
	defer s.Close()

	_, err := s.Add(testEmployee(1))
	require.NoError(t, err)
	assert.NoError(t, s.SaveNow())
}
