// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/auralearn/aura/internal/platform/constants"
)

// # Redis List Cache

// redisListCache implements [ListCache] on top of go-redis.
//
// One key per kind holds the whole imported collection as a JSON array.
// The catalogue is small and changes only on import, so whole-collection
// caching beats per-item keys: a single round-trip serves a browsing page.
type redisListCache struct {
	client *redis.Client
}

// NewListCache constructs a Redis backed [ListCache].
func NewListCache(client *redis.Client) ListCache {
	return &redisListCache{client: client}
}

// cacheKey builds the Redis key for one content kind.
func cacheKey(kind Kind) string {
	return constants.RedisPrefixCatalog + string(kind)
}

/*
Get returns the cached collection for a kind, and whether it was present.

Description: A missing key is a plain miss, not an error. Corrupt payloads
are treated as a miss as well — the caller repopulates from PostgreSQL.
*/
func (cache *redisListCache) Get(context context.Context, kind Kind) ([]*Item, bool, error) {
	payload, err := cache.client.Get(context, cacheKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("catalog cache: get %s: %w", kind, err)
	}

	var items []*Item
	if err := json.Unmarshal(payload, &items); err != nil {
		// A corrupt entry self-heals on the next Set.
		return nil, false, nil
	}

	return items, true, nil
}

// Set stores the collection for a kind with the standard TTL.
func (cache *redisListCache) Set(context context.Context, kind Kind, items []*Item) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("catalog cache: marshal %s: %w", kind, err)
	}

	if err := cache.client.Set(context, cacheKey(kind), payload, constants.CatalogCacheTTL).Err(); err != nil {
		return fmt.Errorf("catalog cache: set %s: %w", kind, err)
	}

	return nil
}

// Invalidate drops the cached collection for a kind.
func (cache *redisListCache) Invalidate(context context.Context, kind Kind) error {
	if err := cache.client.Del(context, cacheKey(kind)).Err(); err != nil {
		return fmt.Errorf("catalog cache: invalidate %s: %w", kind, err)
	}
	return nil
}
