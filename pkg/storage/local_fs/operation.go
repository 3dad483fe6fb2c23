package local_fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/takvimhub/event-calendar-service/pkg/code"
	"github.com/takvimhub/event-calendar-service/pkg/fileurl"

	"github.com/pkg/errors"
)

// mu serializes check-then-rename sequences inside this process. Across
// processes the rename itself is atomic and the token check narrows the
// race to the same window a remote store has.
var mu sync.Mutex

func (l *LocalFS) fullPath(pathKey string) string {
	return filepath.Join(l.Config.SavePath, fileurl.PathSuffixCheckAdd(l.Config.CustomPath, "/")+pathKey)
}

func contentToken(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Get reads the blob whole and returns it with its content hash token.
func (l *LocalFS) Get(ctx context.Context, pathKey string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	content, err := os.ReadFile(l.fullPath(pathKey))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", code.ErrorBlobNotFound
		}
		return nil, "", errors.Wrap(err, "local_fs")
	}
	return content, contentToken(content), nil
}

// Put overwrites the blob whole using write-temp-then-rename so a partial
// snapshot is never observable. expectedToken guards against lost updates.
func (l *LocalFS) Put(ctx context.Context, pathKey string, content []byte, expectedToken string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mu.Lock()
	defer mu.Unlock()

	target := l.fullPath(pathKey)

	current, err := os.ReadFile(target)
	switch {
	case err == nil:
		if contentToken(current) != expectedToken {
			return "", code.ErrorSnapshotConflict
		}
	case os.IsNotExist(err):
		if expectedToken != "" {
			return "", code.ErrorSnapshotConflict
		}
	default:
		return "", errors.Wrap(err, "local_fs")
	}

	if err := fileurl.CreatePath(target, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "local_fs")
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".snapshot-*")
	if err != nil {
		return "", errors.Wrap(err, "local_fs")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "local_fs")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "local_fs")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(err, "local_fs")
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(err, "local_fs")
	}

	return contentToken(content), nil
}
