// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package catalog

import (
	"time"

	"github.com/auralearn/aura/internal/subscription"
)

// # Access-Gated View

// Card is the presentation model for one catalogue entry on the browsing
// pages. It is derived fresh on every request from the item and the
// requesting user's tier — there is no stored lock state anywhere.
type Card struct {
	ID            string            `json:"id"`
	Kind          Kind              `json:"kind"`
	Title         string            `json:"title"`
	TitleEn       string            `json:"title_en,omitempty"`
	Description   string            `json:"description"`
	DescriptionEn string            `json:"description_en,omitempty"`
	Level         Level             `json:"level"`
	Category      Category          `json:"category"`
	Tags          []string          `json:"tags,omitempty"`
	Difficulty    int               `json:"difficulty"`
	RequiredTier  subscription.Tier `json:"required_tier"`

	// Locked tells the client to suppress the primary action ("start",
	// "continue") and render the upgrade call-to-action labelled with
	// RequiredTier instead.
	Locked bool `json:"locked"`

	DurationMinutes int       `json:"duration_minutes"`
	Lessons         int       `json:"lessons,omitempty"`
	Rating          float64   `json:"rating,omitempty"`
	EnrolledCount   int       `json:"enrolled_count,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedBy       *Author   `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewCard builds the view model for one item as seen by a user on the
// given tier.
func NewCard(item *Item, userTier subscription.Tier) Card {
	return Card{
		ID:              item.ID,
		Kind:            item.Kind,
		Title:           item.Title,
		TitleEn:         item.TitleEn,
		Description:     item.Description,
		DescriptionEn:   item.DescriptionEn,
		Level:           item.Level,
		Category:        item.Category,
		Tags:            item.Tags,
		Difficulty:      item.Difficulty(),
		RequiredTier:    item.RequiredTier,
		Locked:          !userTier.CanAccess(item.RequiredTier),
		DurationMinutes: item.DurationMinutes,
		Lessons:         item.Lessons,
		Rating:          item.Rating,
		EnrolledCount:   item.EnrolledCount,
		ImageURL:        item.ImageURL,
		CreatedBy:       item.CreatedBy,
		CreatedAt:       item.CreatedAt,
	}
}

// Cards applies the browsing criteria and builds view models under the
// shown-but-locked policy: items the tier cannot access stay in the result
// with Locked set, so the page can advertise what an upgrade unlocks.
//
// Input order is preserved. This is the counterpart of [Filter], which
// implements the hidden policy; each HTTP call site commits to exactly one
// of the two.
func Cards(items []*Item, criteria Criteria, userTier subscription.Tier) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		if !criteria.Matches(item) {
			continue
		}
		cards = append(cards, NewCard(item, userTier))
	}
	return cards
}
