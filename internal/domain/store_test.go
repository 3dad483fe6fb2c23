package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, y int, m time.Month, d int) DateKey {
	t.Helper()
	k, err := NewDateKey(y, m, d)
	require.NoError(t, err)
	return k
}

func TestCategoryStoreInsertDuplicate(t *testing.T) {
	s := NewCategoryStore(CategoryEvents)
	date := mustDate(t, 2025, time.March, 10)

	e, err := s.Insert(date, "team meeting")
	require.NoError(t, err)
	assert.True(t, e.IsNew)
	assert.Equal(t, "team meeting", e.Description)

	_, err = s.Insert(date, "other meeting")
	assert.ErrorIs(t, err, ErrDateAlreadyExists)

	// original is untouched
	got, ok := s.Get(date)
	require.True(t, ok)
	assert.Equal(t, "team meeting", got.Description)
}

func TestCategoryStoreDelete(t *testing.T) {
	s := NewCategoryStore(CategoryNews)
	date := mustDate(t, 2025, time.March, 10)

	assert.ErrorIs(t, s.Delete(date), ErrEntryNotFound)

	_, err := s.Insert(date, "release notes")
	require.NoError(t, err)
	require.NoError(t, s.Delete(date))
	assert.ErrorIs(t, s.Delete(date), ErrEntryNotFound)

	// delete then insert same date works
	_, err = s.Insert(date, "rewritten")
	require.NoError(t, err)
}

func TestCategoryStoreMarkSeen(t *testing.T) {
	s := NewCategoryStore(CategoryEvents)
	date := mustDate(t, 2025, time.June, 1)
	_, err := s.Insert(date, "x")
	require.NoError(t, err)

	// reads do not clear the flag
	got, _ := s.Get(date)
	assert.True(t, got.IsNew)
	got, _ = s.Get(date)
	assert.True(t, got.IsNew)

	s.MarkSeen(date)
	got, _ = s.Get(date)
	assert.False(t, got.IsNew)

	// idempotent, and unknown dates are a no-op
	s.MarkSeen(date)
	s.MarkSeen(mustDate(t, 2025, time.June, 2))
}

func TestCategoryStoreSortedEntries(t *testing.T) {
	s := NewCategoryStore(CategoryEvents)
	for _, d := range []DateKey{
		mustDate(t, 2025, time.March, 15),
		mustDate(t, 2025, time.January, 2),
		mustDate(t, 2024, time.December, 31),
		mustDate(t, 2025, time.March, 1),
	} {
		_, err := s.Insert(d, string(d))
		require.NoError(t, err)
	}
	entries := s.SortedEntries()
	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Date < entries[i].Date)
	}
}

func TestCategoryStoreGetReturnsCopy(t *testing.T) {
	s := NewCategoryStore(CategoryEvents)
	date := mustDate(t, 2025, time.March, 10)
	_, err := s.Insert(date, "original")
	require.NoError(t, err)

	got, _ := s.Get(date)
	got.Description = "mutated"
	got.IsNew = false

	again, _ := s.Get(date)
	assert.Equal(t, "original", again.Description)
	assert.True(t, again.IsNew)
}

func TestStoreSetUnknownCategory(t *testing.T) {
	ss := NewStoreSet(nil)
	date := mustDate(t, 2025, time.March, 10)

	_, err := ss.Insert("gossip", date, "x")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.ErrorIs(t, ss.Delete("gossip", date), ErrUnknownCategory)
	assert.ErrorIs(t, ss.MarkSeen("gossip", date), ErrUnknownCategory)
	_, err = ss.SortedEntries("gossip")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.False(t, ss.HasCategory("gossip"))
	assert.True(t, ss.HasCategory(CategoryEvents))
}

func TestStoreSetDefaultCategories(t *testing.T) {
	ss := NewStoreSet(nil)
	assert.Equal(t, []Category{CategoryEvents, CategoryAnnouncements, CategoryNews}, ss.Categories())
}

func TestStoreSetSnapshotRestore(t *testing.T) {
	ss := NewStoreSet(nil)
	d1 := mustDate(t, 2025, time.March, 10)
	d2 := mustDate(t, 2025, time.April, 1)

	_, err := ss.Insert(CategoryEvents, d1, "meeting")
	require.NoError(t, err)
	_, err = ss.Insert(CategoryNews, d2, "launch")
	require.NoError(t, err)
	require.NoError(t, ss.MarkSeen(CategoryEvents, d1))

	snap := ss.Snapshot()
	assert.Equal(t, 2, snap.EntryCount())

	restored := NewStoreSet(nil)
	restored.Restore(snap)

	e, ok := restored.Get(CategoryEvents, d1)
	require.True(t, ok)
	assert.Equal(t, "meeting", e.Description)
	assert.False(t, e.IsNew, "seen state survives the round trip")

	n, ok := restored.Get(CategoryNews, d2)
	require.True(t, ok)
	assert.Equal(t, "launch", n.Description)
	assert.True(t, n.IsNew)
}

func TestStoreSetRestoreDropsUnknown(t *testing.T) {
	snap := NewSnapshot()
	snap.Categories["gossip"] = map[DateKey]SnapshotEntry{
		"2025-03-10": {Description: "x"},
	}
	snap.Categories[CategoryEvents] = map[DateKey]SnapshotEntry{
		"2025-03-11": {Description: "kept", IsNew: true},
	}

	ss := NewStoreSet(nil)
	ss.Restore(snap)

	_, ok := ss.Get("gossip", "2025-03-10")
	assert.False(t, ok)
	e, ok := ss.Get(CategoryEvents, "2025-03-11")
	require.True(t, ok)
	assert.Equal(t, "kept", e.Description)
}

func TestStoreSetRestoreReplacesWholesale(t *testing.T) {
	ss := NewStoreSet(nil)
	_, err := ss.Insert(CategoryEvents, mustDate(t, 2025, time.March, 10), "stale")
	require.NoError(t, err)

	ss.Restore(NewSnapshot())

	entries, err := ss.SortedEntries(CategoryEvents)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSnapshotSharesNothing(t *testing.T) {
	ss := NewStoreSet(nil)
	d := mustDate(t, 2025, time.March, 10)
	_, err := ss.Insert(CategoryEvents, d, "before")
	require.NoError(t, err)

	snap := ss.Snapshot()
	require.NoError(t, ss.Delete(CategoryEvents, d))

	assert.Equal(t, 1, snap.EntryCount())
	assert.Equal(t, "before", snap.Categories[CategoryEvents][d].Description)
}
