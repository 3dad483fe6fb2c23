// Package service implements the application operations behind the HTTP
// surface: entry mutation, calendar projection, snapshot synchronization
// and admin authentication.
package service

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/takvimhub/event-calendar-service/internal/domain"
	"github.com/takvimhub/event-calendar-service/internal/dto"
	"github.com/takvimhub/event-calendar-service/internal/metrics"
	"github.com/takvimhub/event-calendar-service/pkg/code"
	"github.com/takvimhub/event-calendar-service/pkg/diff"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SyncService keeps the in-memory store set consistent with the durable
// snapshot blobs. Local storage is always present; remote is optional and
// guarded by the backing store's version token. The service holds the last
// observed tokens; a commit built from a stale remote token is rejected by
// the store, never silently overwritten.
type SyncService struct {
	stores *domain.StoreSet
	local  BlobStore
	remote BlobStore
	key    string
	logger *zap.Logger

	group singleflight.Group

	mu          sync.Mutex
	localToken  string
	remoteToken string
	lastCommit  time.Time
	lastLoad    time.Time
}

// BlobStore is the two-operation optimistic-concurrency contract the
// synchronizer depends on. pkg/storage backends satisfy it.
type BlobStore interface {
	Get(ctx context.Context, pathKey string) (content []byte, token string, err error)
	Put(ctx context.Context, pathKey string, content []byte, expectedToken string) (newToken string, err error)
}

func NewSyncService(stores *domain.StoreSet, local, remote BlobStore, pathKey string, logger *zap.Logger) *SyncService {
	return &SyncService{
		stores: stores,
		local:  local,
		remote: remote,
		key:    pathKey,
		logger: logger,
	}
}

// RemoteEnabled reports whether a remote backing store is configured.
func (s *SyncService) RemoteEnabled() bool {
	return s.remote != nil
}

// Commit serializes the whole store set and writes it durably: local
// first, then remote with the last observed token as precondition. A
// remote conflict aborts before any remote write and surfaces
// ErrorSnapshotConflict; local state stays committed so a later reload
// can reconcile.
func (s *SyncService) Commit(ctx context.Context) (*dto.SyncCommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(ctx)
}

func (s *SyncService) commitLocked(ctx context.Context) (*dto.SyncCommitResult, error) {
	snap := s.stores.Snapshot()
	content, err := snap.Marshal()
	if err != nil {
		return nil, code.ErrorSnapshotCorrupt.WithDetails(err.Error())
	}

	localToken, err := s.local.Put(ctx, s.key, content, s.localToken)
	if err != nil {
		if stderrors.Is(err, code.ErrorSnapshotConflict) {
			// another process rewrote the local file; reconcile on reload
			metrics.SyncConflicts.WithLabelValues("local").Inc()
			return nil, err
		}
		return nil, code.ErrorStorageUnavailable.WithDetails(err.Error())
	}
	s.localToken = localToken

	result := &dto.SyncCommitResult{EntryCount: snap.EntryCount()}

	if s.remote != nil {
		remoteToken, err := s.remote.Put(ctx, s.key, content, s.remoteToken)
		if err != nil {
			if stderrors.Is(err, code.ErrorSnapshotConflict) {
				metrics.SyncConflicts.WithLabelValues("remote").Inc()
				s.logConflict(ctx, content)
				return nil, err
			}
			return nil, code.ErrorStorageUnavailable.WithDetails(err.Error())
		}
		s.remoteToken = remoteToken
		result.RemoteToken = remoteToken
	}

	s.lastCommit = time.Now()
	metrics.SyncCommits.Inc()
	s.logger.Info("snapshot committed",
		zap.String("token", s.remoteToken),
		zap.Int("entries", result.EntryCount))
	return result, nil
}

// logConflict fetches the winning remote content and logs a change summary
// so operators can see what the lost update differed by. Best effort.
func (s *SyncService) logConflict(ctx context.Context, local []byte) {
	remote, _, err := s.remote.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("snapshot conflict, remote unreadable", zap.Error(err))
		return
	}
	summary := diff.Compare(string(local), string(remote))
	s.logger.Warn("snapshot conflict, another writer committed first",
		zap.String("token", s.remoteToken),
		zap.String("drift", summary.String()))
}

// Load replaces the in-memory stores from the durable snapshot. Remote is
// preferred when configured; on remote failure it falls back to local with
// a warning. Absent blobs bootstrap empty stores. A corrupt snapshot
// degrades to empty stores and reports ErrorSnapshotCorrupt, it never
// crashes the loader.
func (s *SyncService) Load(ctx context.Context) error {
	_, err, _ := s.group.Do("load", func() (interface{}, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return nil, s.loadLocked(ctx)
	})
	return err
}

func (s *SyncService) loadLocked(ctx context.Context) error {
	content, fromRemote, err := s.read(ctx)
	if err != nil {
		return err
	}
	s.lastLoad = time.Now()
	metrics.SyncLoads.Inc()

	if content == nil {
		// bootstrap: nothing stored anywhere yet
		s.stores.Restore(nil)
		return nil
	}

	snap, err := domain.UnmarshalSnapshot(content)
	if err != nil {
		s.stores.Restore(nil)
		s.logger.Error("snapshot corrupt, starting empty", zap.Error(err))
		return code.ErrorSnapshotCorrupt.WithDetails(err.Error())
	}
	s.stores.Restore(snap)

	if fromRemote {
		// remote is authoritative; rewrite local so the next offline start
		// sees the same state. Re-read the local token first, the remote
		// preferred path skipped it.
		if _, token, gerr := s.local.Get(ctx, s.key); gerr == nil {
			s.localToken = token
		} else if stderrors.Is(gerr, code.ErrorBlobNotFound) {
			s.localToken = ""
		}
		if token, err := s.local.Put(ctx, s.key, content, s.localToken); err == nil {
			s.localToken = token
		} else {
			s.logger.Warn("local snapshot refresh failed", zap.Error(err))
		}
	}
	return nil
}

// read returns the freshest snapshot content, nil when nothing is stored.
func (s *SyncService) read(ctx context.Context) (content []byte, fromRemote bool, err error) {
	if s.remote != nil {
		content, token, rerr := s.remote.Get(ctx, s.key)
		if rerr == nil {
			s.remoteToken = token
			return content, true, nil
		}
		if stderrors.Is(rerr, code.ErrorBlobNotFound) {
			s.remoteToken = ""
			return s.readLocal(ctx)
		}
		s.logger.Warn("remote snapshot unreachable, falling back to local", zap.Error(rerr))
	}
	return s.readLocal(ctx)
}

func (s *SyncService) readLocal(ctx context.Context) ([]byte, bool, error) {
	content, token, err := s.local.Get(ctx, s.key)
	if err != nil {
		if stderrors.Is(err, code.ErrorBlobNotFound) {
			s.localToken = ""
			return nil, false, nil
		}
		return nil, false, code.ErrorStorageUnavailable.WithDetails(err.Error())
	}
	s.localToken = token
	return content, false, nil
}

// RefreshIfStale reloads from remote when its version token moved past the
// last observed one. Used by the scheduler to pick up commits from other
// processes without restarting.
func (s *SyncService) RefreshIfStale(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	_, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		_, token, err := s.remote.Get(ctx, s.key)
		if err != nil {
			if stderrors.Is(err, code.ErrorBlobNotFound) {
				return nil, nil
			}
			return nil, err
		}
		if token == s.remoteToken {
			return nil, nil
		}
		s.logger.Info("remote snapshot moved, reloading",
			zap.String("token", token))
		return nil, s.loadLocked(ctx)
	})
	return err
}

// Status reports tokens and timestamps for the status endpoint.
func (s *SyncService) Status() *dto.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := &dto.SyncStatus{
		LocalToken:    s.localToken,
		RemoteToken:   s.remoteToken,
		RemoteEnabled: s.remote != nil,
		EntryCount:    s.stores.Snapshot().EntryCount(),
	}
	if !s.lastCommit.IsZero() {
		status.LastCommitUnix = s.lastCommit.Unix()
	}
	if !s.lastLoad.IsZero() {
		status.LastLoadUnix = s.lastLoad.Unix()
	}
	return status
}
