package service

import (
	"context"
	"testing"
	"time"

	"github.com/takvimhub/event-calendar-service/internal/domain"
	"github.com/takvimhub/event-calendar-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPathKey = "calendar.json"

func newSyncFixture(local, remote BlobStore) (*domain.StoreSet, *SyncService) {
	stores := domain.NewStoreSet(nil)
	return stores, NewSyncService(stores, local, remote, testPathKey, zap.NewNop())
}

func mustKey(t *testing.T, y int, m time.Month, d int) domain.DateKey {
	t.Helper()
	k, err := domain.NewDateKey(y, m, d)
	require.NoError(t, err)
	return k
}

func TestSyncBootstrapEmpty(t *testing.T) {
	stores, sync := newSyncFixture(newMemBlobStore(), nil)

	require.NoError(t, sync.Load(context.Background()))

	entries, err := stores.SortedEntries(domain.CategoryEvents)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSyncCommitLoadRoundTrip(t *testing.T) {
	local := newMemBlobStore()
	stores, sync := newSyncFixture(local, nil)
	require.NoError(t, sync.Load(context.Background()))

	date := mustKey(t, 2025, time.March, 10)
	_, err := stores.Insert(domain.CategoryEvents, date, "Workshop")
	require.NoError(t, err)

	result, err := sync.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.EntryCount)

	// fresh session restores identical state
	stores2, sync2 := newSyncFixture(local, nil)
	require.NoError(t, sync2.Load(context.Background()))

	e, ok := stores2.Get(domain.CategoryEvents, date)
	require.True(t, ok)
	assert.Equal(t, "Workshop", e.Description)
	assert.True(t, e.IsNew)
}

func TestSyncRemotePreferredOverLocal(t *testing.T) {
	local := newMemBlobStore()
	remote := newMemBlobStore()

	// remote has an entry, local has a different one
	remoteSet := domain.NewStoreSet(nil)
	_, err := remoteSet.Insert(domain.CategoryNews, mustKey(t, 2025, time.May, 1), "remote")
	require.NoError(t, err)
	content, err := remoteSet.Snapshot().Marshal()
	require.NoError(t, err)
	remote.seed(testPathKey, content)

	localSet := domain.NewStoreSet(nil)
	_, err = localSet.Insert(domain.CategoryNews, mustKey(t, 2025, time.May, 2), "local")
	require.NoError(t, err)
	localContent, err := localSet.Snapshot().Marshal()
	require.NoError(t, err)
	local.seed(testPathKey, localContent)

	stores, sync := newSyncFixture(local, remote)
	require.NoError(t, sync.Load(context.Background()))

	_, ok := stores.Get(domain.CategoryNews, mustKey(t, 2025, time.May, 1))
	assert.True(t, ok, "remote wins")
	_, ok = stores.Get(domain.CategoryNews, mustKey(t, 2025, time.May, 2))
	assert.False(t, ok)

	// remote load rewrote the local copy
	refreshed, _, err := local.Get(context.Background(), testPathKey)
	require.NoError(t, err)
	assert.Equal(t, content, refreshed)
}

func TestSyncRemoteFailureFallsBackToLocal(t *testing.T) {
	local := newMemBlobStore()
	remote := newMemBlobStore()
	remote.failGet = true

	localSet := domain.NewStoreSet(nil)
	date := mustKey(t, 2025, time.June, 5)
	_, err := localSet.Insert(domain.CategoryEvents, date, "offline copy")
	require.NoError(t, err)
	content, err := localSet.Snapshot().Marshal()
	require.NoError(t, err)
	local.seed(testPathKey, content)

	stores, sync := newSyncFixture(local, remote)
	require.NoError(t, sync.Load(context.Background()))

	e, ok := stores.Get(domain.CategoryEvents, date)
	require.True(t, ok)
	assert.Equal(t, "offline copy", e.Description)
}

func TestSyncCorruptSnapshotDegradesToEmpty(t *testing.T) {
	local := newMemBlobStore()
	local.seed(testPathKey, []byte("{{{ not a snapshot"))

	stores, sync := newSyncFixture(local, nil)
	err := sync.Load(context.Background())
	assert.ErrorIs(t, err, code.ErrorSnapshotCorrupt)

	entries, serr := stores.SortedEntries(domain.CategoryEvents)
	require.NoError(t, serr)
	assert.Empty(t, entries, "loader degrades to empty stores")
}

func TestSyncStaleCommitConflicts(t *testing.T) {
	remote := newMemBlobStore()

	// two independent sessions observe the same version
	storesA, syncA := newSyncFixture(newMemBlobStore(), remote)
	storesB, syncB := newSyncFixture(newMemBlobStore(), remote)
	require.NoError(t, syncA.Load(context.Background()))
	require.NoError(t, syncB.Load(context.Background()))

	_, err := storesA.Insert(domain.CategoryEvents, mustKey(t, 2025, time.March, 10), "A wins")
	require.NoError(t, err)
	_, err = syncA.Commit(context.Background())
	require.NoError(t, err)

	_, err = storesB.Insert(domain.CategoryEvents, mustKey(t, 2025, time.March, 11), "B stale")
	require.NoError(t, err)
	_, err = syncB.Commit(context.Background())
	assert.ErrorIs(t, err, code.ErrorSnapshotConflict, "stale token must not overwrite")

	// A's committed content is intact
	content, _, err := remote.Get(context.Background(), testPathKey)
	require.NoError(t, err)
	snap, err := domain.UnmarshalSnapshot(content)
	require.NoError(t, err)
	assert.Contains(t, snap.Categories[domain.CategoryEvents], mustKey(t, 2025, time.March, 10))
	assert.NotContains(t, snap.Categories[domain.CategoryEvents], mustKey(t, 2025, time.March, 11))

	// B reconciles: reload then recommit succeeds and keeps both
	require.NoError(t, syncB.Load(context.Background()))
	_, err = storesB.Insert(domain.CategoryEvents, mustKey(t, 2025, time.March, 11), "B retry")
	require.NoError(t, err)
	_, err = syncB.Commit(context.Background())
	require.NoError(t, err)
}

func TestSyncRefreshIfStale(t *testing.T) {
	remote := newMemBlobStore()

	storesA, syncA := newSyncFixture(newMemBlobStore(), remote)
	storesB, syncB := newSyncFixture(newMemBlobStore(), remote)
	require.NoError(t, syncA.Load(context.Background()))
	require.NoError(t, syncB.Load(context.Background()))

	// no movement: refresh is a no-op
	require.NoError(t, syncB.RefreshIfStale(context.Background()))

	date := mustKey(t, 2025, time.July, 7)
	_, err := storesA.Insert(domain.CategoryAnnouncements, date, "from A")
	require.NoError(t, err)
	_, err = syncA.Commit(context.Background())
	require.NoError(t, err)

	require.NoError(t, syncB.RefreshIfStale(context.Background()))
	e, ok := storesB.Get(domain.CategoryAnnouncements, date)
	require.True(t, ok)
	assert.Equal(t, "from A", e.Description)
}

func TestSyncStatus(t *testing.T) {
	stores, sync := newSyncFixture(newMemBlobStore(), nil)
	require.NoError(t, sync.Load(context.Background()))

	status := sync.Status()
	assert.False(t, status.RemoteEnabled)
	assert.Zero(t, status.EntryCount)
	assert.NotZero(t, status.LastLoadUnix)
	assert.Zero(t, status.LastCommitUnix)

	_, err := stores.Insert(domain.CategoryEvents, mustKey(t, 2025, time.March, 1), "x")
	require.NoError(t, err)
	_, err = sync.Commit(context.Background())
	require.NoError(t, err)

	status = sync.Status()
	assert.Equal(t, 1, status.EntryCount)
	assert.NotEmpty(t, status.LocalToken)
	assert.NotZero(t, status.LastCommitUnix)
}
