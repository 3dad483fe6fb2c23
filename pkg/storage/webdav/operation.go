package webdav

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path"

	"github.com/takvimhub/event-calendar-service/pkg/code"
	"github.com/takvimhub/event-calendar-service/pkg/fileurl"

	"github.com/pkg/errors"
	"github.com/studio-b12/gowebdav"
)

func (w *WebDAV) fileKey(pathKey string) string {
	return path.Join(w.Config.Path, fileurl.PathSuffixCheckAdd(w.Config.CustomPath, "/")+pathKey)
}

func contentToken(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func isNotFound(err error) bool {
	return gowebdav.IsErrNotFound(err) || os.IsNotExist(err)
}

// Get downloads the file whole and returns it with its content hash token.
func (w *WebDAV) Get(ctx context.Context, pathKey string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	content, err := w.Client.Read(w.fileKey(pathKey))
	if err != nil {
		if isNotFound(err) {
			return nil, "", code.ErrorBlobNotFound
		}
		return nil, "", errors.Wrap(err, "webdav")
	}
	return content, contentToken(content), nil
}

// Put uploads the file whole after re-reading the live content and
// comparing its token against expectedToken.
func (w *WebDAV) Put(ctx context.Context, pathKey string, content []byte, expectedToken string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fileKey := w.fileKey(pathKey)

	current, err := w.Client.Read(fileKey)
	switch {
	case err == nil:
		if contentToken(current) != expectedToken {
			return "", code.ErrorSnapshotConflict
		}
	case isNotFound(err):
		if expectedToken != "" {
			return "", code.ErrorSnapshotConflict
		}
		if dir := path.Dir(fileKey); dir != "." && dir != "/" {
			if err := w.Client.MkdirAll(dir, 0644); err != nil {
				return "", errors.Wrap(err, "webdav")
			}
		}
	default:
		return "", errors.Wrap(err, "webdav")
	}

	if err := w.Client.Write(fileKey, content, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "webdav")
	}
	return contentToken(content), nil
}
