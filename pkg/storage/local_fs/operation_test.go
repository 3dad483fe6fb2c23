package local_fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/takvimhub/event-calendar-service/pkg/code"
)

func newTestStore(t *testing.T) *LocalFS {
	t.Helper()
	l, err := NewClient(&Config{SavePath: t.TempDir()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return l
}

func TestGetMissingBlob(t *testing.T) {
	l := newTestStore(t)

	_, _, err := l.Get(context.Background(), "calendar/snapshot.json")
	if !errors.Is(err, code.ErrorBlobNotFound) {
		t.Fatalf("expected ErrorBlobNotFound, got %v", err)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	l := newTestStore(t)
	ctx := context.Background()

	token, err := l.Put(ctx, "calendar/snapshot.json", []byte(`{"v":1}`), "")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if token == "" {
		t.Fatal("Put returned empty token")
	}

	content, gotToken, err := l.Get(ctx, "calendar/snapshot.json")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(content) != `{"v":1}` {
		t.Fatalf("content mismatch: %s", content)
	}
	if gotToken != token {
		t.Fatalf("token mismatch: %s vs %s", gotToken, token)
	}
}

func TestPutCreateRequiresEmptyToken(t *testing.T) {
	l := newTestStore(t)
	ctx := context.Background()

	if _, err := l.Put(ctx, "k", []byte("a"), "stale"); !errors.Is(err, code.ErrorSnapshotConflict) {
		t.Fatalf("expected conflict for create with token, got %v", err)
	}
}

func TestPutStaleTokenRejected(t *testing.T) {
	l := newTestStore(t)
	ctx := context.Background()

	t1, err := l.Put(ctx, "k", []byte("one"), "")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := l.Put(ctx, "k", []byte("two"), t1); err != nil {
		t.Fatalf("Put with fresh token: %v", err)
	}

	// t1 is now stale
	if _, err := l.Put(ctx, "k", []byte("three"), t1); !errors.Is(err, code.ErrorSnapshotConflict) {
		t.Fatalf("expected conflict for stale token, got %v", err)
	}
}

func TestPutLeavesNoTempFiles(t *testing.T) {
	l := newTestStore(t)
	ctx := context.Background()

	if _, err := l.Put(ctx, "k", []byte("content"), ""); err != nil {
		t.Fatalf("Put: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(l.fullPath("k")))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, found %d entries", len(entries))
	}
}
