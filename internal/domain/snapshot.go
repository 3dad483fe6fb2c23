package domain

import (
	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// SnapshotFormatVersion identifies the on-disk layout. Bump on breaking
// schema changes so old loaders fail loudly instead of misreading.
const SnapshotFormatVersion = 1

// SnapshotEntry is the persisted form of an Entry; the date lives in the
// surrounding map key.
type SnapshotEntry struct {
	Description string `json:"description"`
	IsNew       bool   `json:"isNew"`
}

// Snapshot is the full serialized state of all category stores, the unit
// of durability. Every commit replaces the whole blob, never a patch.
type Snapshot struct {
	Version    int                                  `json:"version"`
	Categories map[Category]map[DateKey]SnapshotEntry `json:"categories"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:    SnapshotFormatVersion,
		Categories: make(map[Category]map[DateKey]SnapshotEntry),
	}
}

// Marshal encodes the snapshot as JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	b, err := sonic.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot marshal")
	}
	return b, nil
}

// UnmarshalSnapshot decodes and validates a snapshot blob. Invalid date
// keys make the whole blob corrupt: a snapshot is trusted wholesale or not
// at all.
func UnmarshalSnapshot(content []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := sonic.Unmarshal(content, &snap); err != nil {
		return nil, errors.Wrap(err, "snapshot unmarshal")
	}
	if snap.Version != SnapshotFormatVersion {
		return nil, errors.Errorf("unsupported snapshot version %d", snap.Version)
	}
	for category, entries := range snap.Categories {
		for date := range entries {
			if _, err := ParseDateKey(string(date)); err != nil {
				return nil, errors.Wrapf(err, "category %q date %q", category, date)
			}
		}
	}
	if snap.Categories == nil {
		snap.Categories = make(map[Category]map[DateKey]SnapshotEntry)
	}
	return &snap, nil
}

// EntryCount returns the total number of entries across categories.
func (s *Snapshot) EntryCount() int {
	n := 0
	for _, entries := range s.Categories {
		n += len(entries)
	}
	return n
}
