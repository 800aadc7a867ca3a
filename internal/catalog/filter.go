// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package catalog

import (
	"github.com/auralearn/aura/internal/subscription"
	"github.com/auralearn/aura/pkg/textnorm"
)

// # Filter Pipeline

// CategoryAll disables category filtering in a [Criteria].
const CategoryAll = Category("all")

// Criteria holds the browsing filters a visitor can combine on the course
// and test pages. The zero value (after [ParseBand] defaults) disables
// every optional predicate.
type Criteria struct {
	// Category restricts results to one domain tag. [CategoryAll] or the
	// empty string disables the predicate.
	Category Category

	// Band restricts results to a CEFR level band.
	Band Band

	// Search is a free-text query matched case- and accent-insensitively
	// against titles, descriptions and tags. Empty disables the predicate.
	Search string
}

// matchesCategory reports whether the item passes the category predicate.
func (c Criteria) matchesCategory(item *Item) bool {
	if c.Category == "" || c.Category == CategoryAll {
		return true
	}
	return item.Category == c.Category
}

// matchesBand reports whether the item passes the level-band predicate.
func (c Criteria) matchesBand(item *Item) bool {
	if c.Band == "" || c.Band == BandAll {
		return true
	}
	return c.Band.Contains(item.Level)
}

// matchesSearch reports whether the item passes the free-text predicate.
//
// Both locales of the title and description are searched, plus every tag,
// so a learner typing in English still finds translated content.
func (c Criteria) matchesSearch(item *Item) bool {
	if c.Search == "" {
		return true
	}
	if textnorm.ContainsFold(item.Title, c.Search) ||
		textnorm.ContainsFold(item.TitleEn, c.Search) ||
		textnorm.ContainsFold(item.Description, c.Search) ||
		textnorm.ContainsFold(item.DescriptionEn, c.Search) {
		return true
	}
	for _, tag := range item.Tags {
		if textnorm.ContainsFold(tag, c.Search) {
			return true
		}
	}
	return false
}

// Matches reports whether the item passes every active predicate.
// Predicates are independent, so their evaluation order never changes
// the outcome.
func (c Criteria) Matches(item *Item) bool {
	return c.matchesCategory(item) && c.matchesBand(item) && c.matchesSearch(item)
}

// Filter returns the subset of items visible to a user on the given tier
// under the given criteria, preserving the input order.
//
// Tier gating is always applied: items the tier cannot access are removed
// entirely. Pages that want to render locked items instead go through
// [Cards], which keeps inaccessible items and flags them.
//
// The function is pure — same inputs, same output — and idempotent:
// filtering an already-filtered result with the same arguments returns
// an equal slice.
func Filter(items []*Item, criteria Criteria, userTier subscription.Tier) []*Item {
	filtered := make([]*Item, 0, len(items))
	for _, item := range items {
		if !userTier.CanAccess(item.RequiredTier) {
			continue
		}
		if criteria.Matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
