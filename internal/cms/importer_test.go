// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package cms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralearn/aura/internal/catalog"
)

// stubStore records ReplaceCollection calls per kind.
type stubStore struct {
	mu       sync.Mutex
	replaced map[catalog.Kind]int
	err      error
}

func newStubStore() *stubStore {
	return &stubStore{replaced: make(map[catalog.Kind]int)}
}

func (store *stubStore) ReplaceCollection(_ context.Context, kind catalog.Kind, items []*catalog.Item) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.replaced[kind] = len(items)
	return store.err
}

func (store *stubStore) count(kind catalog.Kind) (int, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	count, ok := store.replaced[kind]
	return count, ok
}

// cmsStub serves a minimal valid envelope, with a configurable item count
// per content type.
func cmsStub(t *testing.T, perKind map[string]int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := perKind[r.URL.Query().Get("type")]
		body := `{"success": true, "data": {"content": [`
		for index := 0; index < count; index++ {
			if index > 0 {
				body += ","
			}
			body += `{"id": "itm", "title": "T", "level": "A1", "category": "GRAMMAR", "requiredTier": "free", "createdAt": "2026-01-01T00:00:00Z"}`
		}
		body += `]}}`
		_, _ = w.Write([]byte(body))
	}))
}

func newTestImporter(serverURL string, store ContentStore) *Importer {
	client := NewClient(serverURL, "", time.Second, discardLogger())
	return NewImporter(client, store, discardLogger())
}

/*
TestImporter_SyncAll_ReplacesBothKinds verifies that one sync pass fetches
courses and tests and pushes each non-empty collection into the store.
*/
func TestImporter_SyncAll_ReplacesBothKinds(t *testing.T) {
	server := cmsStub(t, map[string]int{"course": 3, "test": 2})
	defer server.Close()

	store := newStubStore()
	err := newTestImporter(server.URL, store).SyncAll(context.Background())
	require.NoError(t, err)

	courses, ok := store.count(catalog.KindCourse)
	require.True(t, ok)
	assert.Equal(t, 3, courses)

	tests, ok := store.count(catalog.KindTest)
	require.True(t, ok)
	assert.Equal(t, 2, tests)
}

/*
TestImporter_SyncAll_SkipsEmptyFetch checks that an empty fetch — the shape
of every upstream failure — leaves the stored catalogue untouched instead
of wiping it.
*/
func TestImporter_SyncAll_SkipsEmptyFetch(t *testing.T) {
	server := cmsStub(t, map[string]int{"course": 2, "test": 0})
	defer server.Close()

	store := newStubStore()
	err := newTestImporter(server.URL, store).SyncAll(context.Background())
	require.NoError(t, err)

	_, coursesReplaced := store.count(catalog.KindCourse)
	assert.True(t, coursesReplaced)

	_, testsReplaced := store.count(catalog.KindTest)
	assert.False(t, testsReplaced, "empty fetch must not replace the collection")
}

/*
TestImporter_SyncAll_PropagatesStoreError ensures a replace failure surfaces
to the caller so the scheduler can log it.
*/
func TestImporter_SyncAll_PropagatesStoreError(t *testing.T) {
	server := cmsStub(t, map[string]int{"course": 1, "test": 1})
	defer server.Close()

	store := newStubStore()
	store.err = errors.New("database unavailable")

	err := newTestImporter(server.URL, store).SyncAll(context.Background())
	require.Error(t, err)
}
