package service

import (
	"context"
	stderrors "errors"

	"github.com/takvimhub/event-calendar-service/internal/domain"
	"github.com/takvimhub/event-calendar-service/internal/dto"
	"github.com/takvimhub/event-calendar-service/pkg/code"

	"go.uber.org/zap"
)

// EntryService mutates category stores and commits each mutation durably.
// On a commit conflict it reloads the authoritative snapshot, re-applies
// the mutation once and re-commits; a second conflict is surfaced to the
// caller.
type EntryService struct {
	stores *domain.StoreSet
	sync   *SyncService
	logger *zap.Logger
}

func NewEntryService(stores *domain.StoreSet, sync *SyncService, logger *zap.Logger) *EntryService {
	return &EntryService{
		stores: stores,
		sync:   sync,
		logger: logger,
	}
}

func mapDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, domain.ErrDateAlreadyExists):
		return code.ErrorDateAlreadyExists
	case stderrors.Is(err, domain.ErrEntryNotFound):
		return code.ErrorEntryNotFound
	case stderrors.Is(err, domain.ErrUnknownCategory):
		return code.ErrorUnknownCategory
	case stderrors.Is(err, domain.ErrInvalidDateKey):
		return code.ErrorInvalidDateKey
	default:
		return code.ErrorServerInternal.WithDetails(err.Error())
	}
}

// mutateAndCommit applies apply, commits, and on a stale-token conflict
// reloads and retries the pair exactly once. apply must be safe to run
// twice against different store states; domain validation errors on the
// retry (e.g. the reloaded snapshot already has the date) win over the
// conflict.
func (s *EntryService) mutateAndCommit(ctx context.Context, apply func() error) error {
	if err := apply(); err != nil {
		return mapDomainErr(err)
	}
	_, err := s.sync.Commit(ctx)
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, code.ErrorSnapshotConflict) {
		return err
	}

	s.logger.Info("commit conflicted, reloading and retrying once")
	if lerr := s.sync.Load(ctx); lerr != nil {
		return lerr
	}
	if aerr := apply(); aerr != nil {
		return mapDomainErr(aerr)
	}
	_, err = s.sync.Commit(ctx)
	return err
}

// Insert creates an entry and commits the snapshot.
func (s *EntryService) Insert(ctx context.Context, req *dto.InsertEntryRequest) (*dto.Entry, error) {
	date, err := domain.ParseDateKey(req.Date)
	if err != nil {
		return nil, code.ErrorInvalidDateKey
	}
	category := domain.Category(req.Category)

	var inserted *domain.Entry
	err = s.mutateAndCommit(ctx, func() error {
		e, ierr := s.stores.Insert(category, date, req.Description)
		if ierr != nil {
			return ierr
		}
		inserted = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("entry inserted",
		zap.String("category", req.Category),
		zap.String("date", req.Date))
	return dto.EntryFromDomain(inserted), nil
}

// Delete removes an entry and commits the snapshot.
func (s *EntryService) Delete(ctx context.Context, req *dto.DeleteEntryRequest) error {
	date, err := domain.ParseDateKey(req.Date)
	if err != nil {
		return code.ErrorInvalidDateKey
	}
	category := domain.Category(req.Category)

	err = s.mutateAndCommit(ctx, func() error {
		return s.stores.Delete(category, date)
	})
	if err != nil {
		return err
	}
	s.logger.Info("entry deleted",
		zap.String("category", req.Category),
		zap.String("date", req.Date))
	return nil
}

// MarkSeen clears the new-entry flag and commits so the seen state
// survives restarts. Idempotent.
func (s *EntryService) MarkSeen(ctx context.Context, req *dto.MarkSeenRequest) error {
	date, err := domain.ParseDateKey(req.Date)
	if err != nil {
		return code.ErrorInvalidDateKey
	}
	category := domain.Category(req.Category)

	return s.mutateAndCommit(ctx, func() error {
		return s.stores.MarkSeen(category, date)
	})
}

// List returns a category's entries in ascending date order. Pure read,
// never flips the new-entry flag.
func (s *EntryService) List(req *dto.ListEntriesRequest) (*dto.CategoryEntries, error) {
	entries, err := s.stores.SortedEntries(domain.Category(req.Category))
	if err != nil {
		return nil, mapDomainErr(err)
	}
	return &dto.CategoryEntries{
		Category: req.Category,
		Entries:  dto.EntriesFromDomain(entries),
	}, nil
}
