package diff

import "testing"

func TestCompareIdentical(t *testing.T) {
	s := Compare(`{"a":1}`, `{"a":1}`)
	if s.Hunks != 0 || s.Inserted != 0 || s.Deleted != 0 {
		t.Fatalf("expected empty summary, got %+v", s)
	}
	if s.String() != "contents identical" {
		t.Fatalf("unexpected string: %s", s.String())
	}
}

func TestCompareDetectsChange(t *testing.T) {
	local := `{"events":{"2025-03-10":{"description":"Workshop"}}}`
	remote := `{"events":{"2025-03-10":{"description":"Workshop"},"2025-03-11":{"description":"Seminer"}}}`

	s := Compare(local, remote)
	if s.Hunks == 0 {
		t.Fatal("expected at least one hunk")
	}
	if s.Inserted == 0 {
		t.Fatal("expected inserted characters")
	}
	if s.Deleted != 0 {
		t.Fatalf("expected no deletions, got %d", s.Deleted)
	}
}
