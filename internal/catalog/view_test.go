// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralearn/aura/internal/catalog"
	"github.com/auralearn/aura/internal/subscription"
)

/*
TestCards_ShownButLocked checks the shown-but-locked policy: inaccessible
items stay in the result, flagged so the client can render the upgrade
call-to-action.
*/
func TestCards_ShownButLocked(t *testing.T) {
	items := fixtureItems()

	cards := catalog.Cards(items, catalog.Criteria{}, subscription.TierEssential)
	require.Len(t, cards, 3)

	byID := map[string]catalog.Card{}
	for _, card := range cards {
		byID[card.ID] = card
	}

	assert.False(t, byID["c1"].Locked)
	assert.False(t, byID["c3"].Locked)

	// The premium listening course is visible but locked for essential.
	assert.True(t, byID["c2"].Locked)
	assert.Equal(t, subscription.TierPremium, byID["c2"].RequiredTier)
}

/*
TestCards_CriteriaStillApply checks that browsing filters apply before the
lock state is computed — a locked item that doesn't match the search is not
shown at all.
*/
func TestCards_CriteriaStillApply(t *testing.T) {
	items := fixtureItems()

	cards := catalog.Cards(items, catalog.Criteria{Category: catalog.CategoryListening}, subscription.TierFree)
	require.Len(t, cards, 1)
	assert.Equal(t, "c2", cards[0].ID)
	assert.True(t, cards[0].Locked)
}

/*
TestNewCard_Difficulty checks the deterministic CEFR→difficulty mapping.
*/
func TestNewCard_Difficulty(t *testing.T) {
	tests := []struct {
		level catalog.Level
		want  int
	}{
		{catalog.LevelA1, 1},
		{catalog.LevelA2, 2},
		{catalog.LevelB1, 3},
		{catalog.LevelB2, 4},
		{catalog.LevelC1, 5},
		{catalog.LevelC2, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			item := &catalog.Item{Level: tt.level, RequiredTier: subscription.TierFree}
			card := catalog.NewCard(item, subscription.TierFree)
			assert.Equal(t, tt.want, card.Difficulty)
		})
	}
}

/*
TestNewCard_StatsNeverSynthesized checks that unreported stats stay zero
instead of being invented client-side.
*/
func TestNewCard_StatsNeverSynthesized(t *testing.T) {
	item := &catalog.Item{ID: "x", Level: catalog.LevelA1, RequiredTier: subscription.TierFree}

	card := catalog.NewCard(item, subscription.TierFree)
	assert.Zero(t, card.Rating)
	assert.Zero(t, card.EnrolledCount)
}
