// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/auralearn/aura/internal/platform/apperr"
	"github.com/auralearn/aura/internal/subscription"
	"github.com/auralearn/aura/pkg/pagination"
)

// # Service Layer

// Service orchestrates catalogue browsing: loading the imported collection
// (cache first), filtering it for the requesting user's tier, and shaping
// the access-gated view models.
type Service struct {
	repo  Repository
	cache ListCache
	log   *slog.Logger
}

// NewService constructs a catalogue [Service].
func NewService(repo Repository, cache ListCache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// # Browsing

/*
ListCards returns one page of browsable cards for a kind.

Description: Loads the collection (Redis first, PostgreSQL on miss) and
applies the browsing criteria for the user's tier.

Two gating policies exist, chosen by the caller:

  - accessibleOnly=false (default browsing pages): shown-but-locked.
    Inaccessible items stay in the result flagged Locked, so the page can
    advertise what an upgrade unlocks.
  - accessibleOnly=true: hidden. Inaccessible items are removed entirely
    ([Filter] semantics) — used by "my content" style views.

Parameters:
  - context: context.Context
  - kind: Kind
  - criteria: Criteria (category, level band, search)
  - userTier: subscription.Tier
  - accessibleOnly: bool
  - page: pagination.Params

Returns:
  - []Card: One page of view models
  - pagination.Meta: Metadata over the filtered (pre-pagination) total
  - error: Repository failures
*/
func (service *Service) ListCards(context context.Context, kind Kind, criteria Criteria, userTier subscription.Tier, accessibleOnly bool, page pagination.Params) ([]Card, pagination.Meta, error) {
	items, err := service.loadItems(context, kind)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	var cards []Card
	if accessibleOnly {
		for _, item := range Filter(items, criteria, userTier) {
			cards = append(cards, NewCard(item, userTier))
		}
	} else {
		cards = Cards(items, criteria, userTier)
	}

	meta := pagination.NewMeta(page.Page, page.Limit, len(cards))
	start, end := page.Slice(len(cards))

	return cards[start:end], meta, nil
}

/*
GetCard returns the detail view of one item as seen by the user.

Description: Locked content is not served: the detail page is where the
"start" action lives, so an insufficient tier gets a TIER_LOCKED error
naming the plan to upgrade to. The listing endpoints are the place where
locked content is advertised.

Parameters:
  - context: context.Context
  - kind: Kind
  - id: string (UUID)
  - userTier: subscription.Tier

Returns:
  - *Card: The unlocked view model
  - error: apperr NotFound or TierLocked
*/
func (service *Service) GetCard(context context.Context, kind Kind, id string, userTier subscription.Tier) (*Card, error) {
	item, err := service.repo.FindByID(context, kind, id)
	if err != nil {
		return nil, err
	}

	if !userTier.CanAccess(item.RequiredTier) {
		return nil, apperr.TierLocked(string(item.RequiredTier))
	}

	card := NewCard(item, userTier)
	return &card, nil
}

// # Import Support

/*
ReplaceCollection swaps the stored collection of one kind and drops its
cache entry, making the new import visible to the next request.

Parameters:
  - context: context.Context
  - kind: Kind
  - items: []*Item (The freshly imported collection)

Returns:
  - error: Storage failures (cache failures are logged, not returned)
*/
func (service *Service) ReplaceCollection(context context.Context, kind Kind, items []*Item) error {
	if err := service.repo.ReplaceKind(context, kind, items, time.Now().UTC()); err != nil {
		return err
	}

	if err := service.cache.Invalidate(context, kind); err != nil {
		// Stale reads self-expire with the cache TTL.
		service.log.Warn("catalog_cache_invalidate_failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}

	service.log.Info("catalog_collection_replaced",
		slog.String("kind", string(kind)),
		slog.Int("items", len(items)),
	)

	return nil
}

// # Internal

// loadItems returns the collection for a kind, preferring the cache.
//
// Cache failures degrade to PostgreSQL with a warning — a flaky Redis
// must never take the browsing pages down.
func (service *Service) loadItems(context context.Context, kind Kind) ([]*Item, error) {
	cached, found, err := service.cache.Get(context, kind)
	if err != nil {
		service.log.Warn("catalog_cache_get_failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	} else if found {
		return cached, nil
	}

	items, err := service.repo.ListByKind(context, kind)
	if err != nil {
		return nil, err
	}

	if err := service.cache.Set(context, kind, items); err != nil {
		service.log.Warn("catalog_cache_set_failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}

	return items, nil
}
