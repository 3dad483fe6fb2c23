package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/takvimhub/event-calendar-service/pkg/code"
)

// memBlobStore is an in-memory BlobStore honoring the same token contract
// as the real backends: content-hash tokens, create requires an empty
// expected token, mismatched tokens conflict.
type memBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
	// failGet forces Get to report storage failure, for fallback tests
	failGet bool
	puts    int
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: make(map[string][]byte)}
}

func memToken(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func (m *memBlobStore) Get(_ context.Context, pathKey string) ([]byte, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, "", code.ErrorStorageUnavailable
	}
	content, ok := m.blobs[pathKey]
	if !ok {
		return nil, "", code.ErrorBlobNotFound
	}
	out := append([]byte(nil), content...)
	return out, memToken(content), nil
}

func (m *memBlobStore) Put(_ context.Context, pathKey string, content []byte, expectedToken string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	current, ok := m.blobs[pathKey]
	if !ok {
		if expectedToken != "" {
			return "", code.ErrorSnapshotConflict
		}
	} else if memToken(current) != expectedToken {
		return "", code.ErrorSnapshotConflict
	}
	m.blobs[pathKey] = append([]byte(nil), content...)
	return memToken(content), nil
}

// seed stores content directly, bypassing the token check.
func (m *memBlobStore) seed(pathKey string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[pathKey] = append([]byte(nil), content...)
}
