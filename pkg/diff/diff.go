// Package diff summarizes how two snapshot blobs differ, for conflict
// reports. It never merges; the synchronizer treats conflicts as terminal.
package diff

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Summary describes the difference between the snapshot a commit was built
// from and the one the remote currently holds.
type Summary struct {
	Inserted int // characters present remotely but not locally
	Deleted  int // characters present locally but not remotely
	Hunks    int // number of changed regions
}

func (s Summary) String() string {
	if s.Hunks == 0 {
		return "contents identical"
	}
	return fmt.Sprintf("%d hunk(s), +%d/-%d chars", s.Hunks, s.Inserted, s.Deleted)
}

// Compare computes a Summary between the local and remote blob contents.
func Compare(local, remote string) Summary {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(local, remote, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var s Summary
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Inserted += len(d.Text)
			s.Hunks++
		case diffmatchpatch.DiffDelete:
			s.Deleted += len(d.Text)
			s.Hunks++
		}
	}
	return s
}
