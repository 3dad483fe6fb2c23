package domain

import (
	"errors"
	"sort"
	"sync"
)

// Category names a store. The set of categories is fixed at construction,
// not user extensible at runtime.
type Category string

// Default categories, mirroring the three boards of the original calendar.
const (
	CategoryEvents        Category = "events"
	CategoryAnnouncements Category = "announcements"
	CategoryNews          Category = "news"
)

var (
	// ErrDateAlreadyExists is returned on inserting a second entry for a
	// date already present in the category.
	ErrDateAlreadyExists = errors.New("an entry already exists for this date")
	// ErrEntryNotFound is returned on deleting a date with no entry.
	ErrEntryNotFound = errors.New("no entry exists for this date")
	// ErrUnknownCategory is returned for a category outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")
)

// CategoryStore maps DateKey to Entry for one category, enforcing at most
// one entry per date. It is not safe for concurrent use on its own; the
// owning StoreSet serializes access.
type CategoryStore struct {
	category Category
	entries  map[DateKey]*Entry
}

func NewCategoryStore(category Category) *CategoryStore {
	return &CategoryStore{
		category: category,
		entries:  make(map[DateKey]*Entry),
	}
}

func (s *CategoryStore) Category() Category {
	return s.category
}

// Insert creates an entry with IsNew=true. Duplicate dates are rejected,
// existing content is never overwritten; edits are an explicit
// delete-then-insert.
func (s *CategoryStore) Insert(date DateKey, description string) (*Entry, error) {
	if _, ok := s.entries[date]; ok {
		return nil, ErrDateAlreadyExists
	}
	e := &Entry{
		Date:        date,
		Description: description,
		IsNew:       true,
	}
	s.entries[date] = e
	return e.Clone(), nil
}

// Delete removes the entry for date.
func (s *CategoryStore) Delete(date DateKey) error {
	if _, ok := s.entries[date]; !ok {
		return ErrEntryNotFound
	}
	delete(s.entries, date)
	return nil
}

// Get returns a copy of the entry for date.
func (s *CategoryStore) Get(date DateKey) (*Entry, bool) {
	e, ok := s.entries[date]
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// MarkSeen clears the IsNew flag. Idempotent; a date with no entry is a
// no-op.
func (s *CategoryStore) MarkSeen(date DateKey) {
	if e, ok := s.entries[date]; ok {
		e.IsNew = false
	}
}

// SortedEntries returns copies of all entries ordered by date ascending.
func (s *CategoryStore) SortedEntries() []*Entry {
	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

func (s *CategoryStore) Len() int {
	return len(s.entries)
}

// StoreSet owns one CategoryStore per configured category and guards them
// with a single mutex: each store belongs to one logical session between
// loads, cross process safety comes from the synchronizer's version token.
type StoreSet struct {
	mu         sync.RWMutex
	categories []Category
	stores     map[Category]*CategoryStore
}

func NewStoreSet(categories []Category) *StoreSet {
	if len(categories) == 0 {
		categories = []Category{CategoryEvents, CategoryAnnouncements, CategoryNews}
	}
	ss := &StoreSet{
		categories: append([]Category(nil), categories...),
		stores:     make(map[Category]*CategoryStore, len(categories)),
	}
	for _, c := range categories {
		ss.stores[c] = NewCategoryStore(c)
	}
	return ss
}

// Categories returns the fixed category set in configuration order.
func (ss *StoreSet) Categories() []Category {
	return append([]Category(nil), ss.categories...)
}

// HasCategory reports whether c belongs to the fixed set.
func (ss *StoreSet) HasCategory(c Category) bool {
	_, ok := ss.stores[c]
	return ok
}

func (ss *StoreSet) Insert(c Category, date DateKey, description string) (*Entry, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	store, ok := ss.stores[c]
	if !ok {
		return nil, ErrUnknownCategory
	}
	return store.Insert(date, description)
}

func (ss *StoreSet) Delete(c Category, date DateKey) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	store, ok := ss.stores[c]
	if !ok {
		return ErrUnknownCategory
	}
	return store.Delete(date)
}

func (ss *StoreSet) MarkSeen(c Category, date DateKey) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	store, ok := ss.stores[c]
	if !ok {
		return ErrUnknownCategory
	}
	store.MarkSeen(date)
	return nil
}

func (ss *StoreSet) Get(c Category, date DateKey) (*Entry, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	store, ok := ss.stores[c]
	if !ok {
		return nil, false
	}
	return store.Get(date)
}

func (ss *StoreSet) SortedEntries(c Category) ([]*Entry, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	store, ok := ss.stores[c]
	if !ok {
		return nil, ErrUnknownCategory
	}
	return store.SortedEntries(), nil
}

// Snapshot serializes the whole set under the read lock. The result shares
// nothing with the live stores.
func (ss *StoreSet) Snapshot() *Snapshot {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	snap := NewSnapshot()
	for _, c := range ss.categories {
		entries := make(map[DateKey]SnapshotEntry, ss.stores[c].Len())
		for date, e := range ss.stores[c].entries {
			entries[date] = SnapshotEntry{
				Description: e.Description,
				IsNew:       e.IsNew,
			}
		}
		snap.Categories[c] = entries
	}
	return snap
}

// Restore replaces store contents wholesale from a snapshot. Categories in
// the snapshot but outside the fixed set are dropped; fixed categories
// missing from the snapshot come back empty.
func (ss *StoreSet) Restore(snap *Snapshot) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	for _, c := range ss.categories {
		fresh := NewCategoryStore(c)
		if snap != nil {
			for date, se := range snap.Categories[c] {
				fresh.entries[date] = &Entry{
					Date:        date,
					Description: se.Description,
					IsNew:       se.IsNew,
				}
			}
		}
		ss.stores[c] = fresh
	}
}
