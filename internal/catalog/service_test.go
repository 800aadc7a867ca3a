// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralearn/aura/internal/catalog"
	"github.com/auralearn/aura/internal/platform/apperr"
	"github.com/auralearn/aura/internal/subscription"
	"github.com/auralearn/aura/pkg/pagination"
)

// fakeRepository serves one in-memory collection per kind and counts reads.
type fakeRepository struct {
	itemsByKind map[catalog.Kind][]*catalog.Item
	listCalls   int
	listErr     error
	replaced    map[catalog.Kind]int
}

func newFakeRepository(items []*catalog.Item) *fakeRepository {
	return &fakeRepository{
		itemsByKind: map[catalog.Kind][]*catalog.Item{catalog.KindCourse: items},
		replaced:    make(map[catalog.Kind]int),
	}
}

func (repository *fakeRepository) ListByKind(_ context.Context, kind catalog.Kind) ([]*catalog.Item, error) {
	repository.listCalls++
	if repository.listErr != nil {
		return nil, repository.listErr
	}
	return repository.itemsByKind[kind], nil
}

func (repository *fakeRepository) FindByID(_ context.Context, kind catalog.Kind, id string) (*catalog.Item, error) {
	for _, item := range repository.itemsByKind[kind] {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, apperr.NotFound("Content")
}

func (repository *fakeRepository) ReplaceKind(_ context.Context, kind catalog.Kind, items []*catalog.Item, _ time.Time) error {
	repository.itemsByKind[kind] = items
	repository.replaced[kind]++
	return nil
}

// fakeCache is an in-memory ListCache with injectable failures.
type fakeCache struct {
	entries      map[catalog.Kind][]*catalog.Item
	getErr       error
	setErr       error
	invalidated  int
	invalidateEr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[catalog.Kind][]*catalog.Item)}
}

func (cache *fakeCache) Get(_ context.Context, kind catalog.Kind) ([]*catalog.Item, bool, error) {
	if cache.getErr != nil {
		return nil, false, cache.getErr
	}
	items, found := cache.entries[kind]
	return items, found, nil
}

func (cache *fakeCache) Set(_ context.Context, kind catalog.Kind, items []*catalog.Item) error {
	if cache.setErr != nil {
		return cache.setErr
	}
	cache.entries[kind] = items
	return nil
}

func (cache *fakeCache) Invalidate(_ context.Context, kind catalog.Kind) error {
	cache.invalidated++
	delete(cache.entries, kind)
	return cache.invalidateEr
}

func newTestService(repository catalog.Repository, cache catalog.ListCache) *catalog.Service {
	return catalog.NewService(repository, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func firstPage() pagination.Params {
	return pagination.Params{Page: 1, Limit: 20}
}

/*
TestService_ListCards_GatingPolicies verifies the two listing policies over
one collection: the browsing default keeps locked items flagged, while
accessibleOnly removes them.
*/
func TestService_ListCards_GatingPolicies(t *testing.T) {
	service := newTestService(newFakeRepository(fixtureItems()), newFakeCache())
	criteria := catalog.Criteria{Category: catalog.CategoryAll, Band: catalog.BandAll}

	// Default policy: every item is shown, the premium one locked for free.
	cards, meta, err := service.ListCards(context.Background(), catalog.KindCourse, criteria, subscription.TierFree, false, firstPage())
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, 3, meta.Total)
	assert.False(t, cards[0].Locked)
	assert.True(t, cards[1].Locked)
	assert.True(t, cards[2].Locked)

	// accessibleOnly: locked items disappear entirely.
	cards, meta, err = service.ListCards(context.Background(), catalog.KindCourse, criteria, subscription.TierFree, true, firstPage())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 1, meta.Total)
	assert.Equal(t, "c1", cards[0].ID)
	assert.False(t, cards[0].Locked)
}

/*
TestService_ListCards_CachePopulation checks the Redis-first read path: the
first request hits the repository and fills the cache, the second is served
without touching storage.
*/
func TestService_ListCards_CachePopulation(t *testing.T) {
	repository := newFakeRepository(fixtureItems())
	cache := newFakeCache()
	service := newTestService(repository, cache)
	criteria := catalog.Criteria{Category: catalog.CategoryAll, Band: catalog.BandAll}

	_, _, err := service.ListCards(context.Background(), catalog.KindCourse, criteria, subscription.TierPro, false, firstPage())
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls)

	_, _, err = service.ListCards(context.Background(), catalog.KindCourse, criteria, subscription.TierPro, false, firstPage())
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls, "second read must come from cache")
}

/*
TestService_ListCards_CacheDegradation proves a broken cache degrades to
PostgreSQL instead of failing the request, on both the read and write side.
*/
func TestService_ListCards_CacheDegradation(t *testing.T) {
	repository := newFakeRepository(fixtureItems())
	cache := newFakeCache()
	cache.getErr = errors.New("redis gone")
	cache.setErr = errors.New("redis gone")
	service := newTestService(repository, cache)

	cards, _, err := service.ListCards(context.Background(), catalog.KindCourse, catalog.Criteria{Category: catalog.CategoryAll, Band: catalog.BandAll}, subscription.TierPro, false, firstPage())

	require.NoError(t, err)
	assert.Len(t, cards, 3)
}

/*
TestService_ListCards_RepositoryFailure surfaces storage errors once the
cache cannot help.
*/
func TestService_ListCards_RepositoryFailure(t *testing.T) {
	repository := newFakeRepository(nil)
	repository.listErr = errors.New("connection refused")
	service := newTestService(repository, newFakeCache())

	_, _, err := service.ListCards(context.Background(), catalog.KindCourse, catalog.Criteria{Category: catalog.CategoryAll, Band: catalog.BandAll}, subscription.TierPro, false, firstPage())

	require.Error(t, err)
}

/*
TestService_ListCards_Pagination slices the filtered collection, with the
meta describing the pre-pagination total.
*/
func TestService_ListCards_Pagination(t *testing.T) {
	service := newTestService(newFakeRepository(fixtureItems()), newFakeCache())
	criteria := catalog.Criteria{Category: catalog.CategoryAll, Band: catalog.BandAll}

	page := pagination.Params{Page: 2, Limit: 2}
	cards, meta, err := service.ListCards(context.Background(), catalog.KindCourse, criteria, subscription.TierPro, false, page)

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "c3", cards[0].ID)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

/*
TestService_GetCard enforces the detail-page policy: accessible content is
served unlocked, gated content returns TIER_LOCKED naming the required
plan, unknown IDs return 404.
*/
func TestService_GetCard(t *testing.T) {
	service := newTestService(newFakeRepository(fixtureItems()), newFakeCache())

	t.Run("accessible", func(t *testing.T) {
		card, err := service.GetCard(context.Background(), catalog.KindCourse, "c3", subscription.TierEssential)
		require.NoError(t, err)
		assert.Equal(t, "c3", card.ID)
		assert.False(t, card.Locked)
	})

	t.Run("tier locked", func(t *testing.T) {
		card, err := service.GetCard(context.Background(), catalog.KindCourse, "c2", subscription.TierEssential)
		assert.Nil(t, card)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "TIER_LOCKED", appError.Code)
		assert.Contains(t, appError.Message, "premium")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetCard(context.Background(), catalog.KindCourse, "missing", subscription.TierPro)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "NOT_FOUND", appError.Code)
	})
}

/*
TestService_ReplaceCollection swaps the stored collection and invalidates
its cache entry so the next read sees the import.
*/
func TestService_ReplaceCollection(t *testing.T) {
	repository := newFakeRepository(fixtureItems())
	cache := newFakeCache()
	service := newTestService(repository, cache)
	criteria := catalog.Criteria{Category: catalog.CategoryAll, Band: catalog.BandAll}

	// Warm the cache with the original collection.
	_, _, err := service.ListCards(context.Background(), catalog.KindCourse, criteria, subscription.TierPro, false, firstPage())
	require.NoError(t, err)

	fresh := []*catalog.Item{{
		ID:           "c9",
		Kind:         catalog.KindCourse,
		Title:        "Nouveau cours",
		Level:        catalog.LevelB1,
		Category:     catalog.CategoryReading,
		RequiredTier: subscription.TierFree,
	}}
	require.NoError(t, service.ReplaceCollection(context.Background(), catalog.KindCourse, fresh))
	assert.Equal(t, 1, cache.invalidated)

	cards, _, err := service.ListCards(context.Background(), catalog.KindCourse, criteria, subscription.TierPro, false, firstPage())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "c9", cards[0].ID)
}

/*
TestService_ReplaceCollection_CacheInvalidateFailure keeps the import
successful when only the cache invalidation fails; staleness is bounded by
the cache TTL.
*/
func TestService_ReplaceCollection_CacheInvalidateFailure(t *testing.T) {
	repository := newFakeRepository(fixtureItems())
	cache := newFakeCache()
	cache.invalidateEr = errors.New("redis gone")
	service := newTestService(repository, cache)

	err := service.ReplaceCollection(context.Background(), catalog.KindCourse, fixtureItems())

	require.NoError(t, err)
	assert.Equal(t, 1, repository.replaced[catalog.KindCourse])
}
