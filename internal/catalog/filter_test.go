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

// fixtureItems returns a small catalogue spanning tiers, levels and
// categories. Order is significant: filtering must preserve it.
func fixtureItems() []*catalog.Item {
	return []*catalog.Item{
		{
			ID:           "c1",
			Kind:         catalog.KindCourse,
			Title:        "Grammaire de base",
			Description:  "Les fondamentaux de la grammaire française",
			Level:        catalog.LevelA1,
			Category:     catalog.CategoryGrammar,
			RequiredTier: subscription.TierFree,
			Tags:         []string{"débutant", "conjugaison"},
		},
		{
			ID:           "c2",
			Kind:         catalog.KindCourse,
			Title:        "Compréhension orale avancée",
			Description:  "Dialogues authentiques et accents régionaux",
			Level:        catalog.LevelB2,
			Category:     catalog.CategoryListening,
			RequiredTier: subscription.TierPremium,
		},
		{
			ID:           "c3",
			Kind:         catalog.KindCourse,
			Title:        "Expression écrite C1",
			TitleEn:      "Advanced writing",
			Description:  "Argumentation et synthèse",
			Level:        catalog.LevelC1,
			Category:     catalog.CategoryWriting,
			RequiredTier: subscription.TierEssential,
		},
	}
}

/*
TestFilter_TierGatingOnly checks that all-"all" criteria return exactly the
tier-accessible subset in original order.
*/
func TestFilter_TierGatingOnly(t *testing.T) {
	items := fixtureItems()
	criteria := catalog.Criteria{Category: catalog.CategoryAll, Band: catalog.BandAll}

	tests := []struct {
		name    string
		tier    subscription.Tier
		wantIDs []string
	}{
		{"free_sees_free_only", subscription.TierFree, []string{"c1"}},
		{"essential_excludes_premium", subscription.TierEssential, []string{"c1", "c3"}},
		{"premium_sees_all", subscription.TierPremium, []string{"c1", "c2", "c3"}},
		{"pro_sees_all", subscription.TierPro, []string{"c1", "c2", "c3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(items, criteria, tt.tier)

			gotIDs := make([]string, 0, len(got))
			for _, item := range got {
				gotIDs = append(gotIDs, item.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

/*
TestFilter_SearchIsAccentAndCaseInsensitive checks French-friendly search.
*/
func TestFilter_SearchIsAccentAndCaseInsensitive(t *testing.T) {
	items := fixtureItems()

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{"uppercase_prefix", "GRAMM", []string{"c1"}},
		{"missing_accents", "comprehension", []string{"c1", "c2"}},
		{"tag_match", "conjugaison", []string{"c1"}},
		{"english_title_match", "advanced writing", []string{"c3"}},
		{"no_match", "phonétique", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(items, catalog.Criteria{Search: tt.search}, subscription.TierPro)

			var gotIDs []string
			for _, item := range got {
				gotIDs = append(gotIDs, item.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

/*
TestFilter_LevelBands checks the CEFR band bucketing: B2 is intermediate,
never beginner or advanced.
*/
func TestFilter_LevelBands(t *testing.T) {
	items := fixtureItems()

	beginner := catalog.Filter(items, catalog.Criteria{Band: catalog.BandBeginner}, subscription.TierPro)
	require.Len(t, beginner, 1)
	assert.Equal(t, "c1", beginner[0].ID)

	intermediate := catalog.Filter(items, catalog.Criteria{Band: catalog.BandIntermediate}, subscription.TierPro)
	require.Len(t, intermediate, 1)
	assert.Equal(t, "c2", intermediate[0].ID)

	advanced := catalog.Filter(items, catalog.Criteria{Band: catalog.BandAdvanced}, subscription.TierPro)
	require.Len(t, advanced, 1)
	assert.Equal(t, "c3", advanced[0].ID)
}

/*
TestFilter_CombinedPredicates checks AND semantics across predicates:
a pro user filtering for an advanced band over items that are all below C1
gets an empty result, not an error.
*/
func TestFilter_CombinedPredicates(t *testing.T) {
	items := []*catalog.Item{
		{ID: "1", RequiredTier: subscription.TierFree, Level: catalog.LevelA1, Category: catalog.CategoryGrammar},
		{ID: "2", RequiredTier: subscription.TierPremium, Level: catalog.LevelB2, Category: catalog.CategoryListening},
	}

	// Essential user, no optional filters: premium item excluded.
	got := catalog.Filter(items, catalog.Criteria{}, subscription.TierEssential)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Pro user, advanced band: nothing is C1/C2.
	got = catalog.Filter(items, catalog.Criteria{Band: catalog.BandAdvanced}, subscription.TierPro)
	assert.Empty(t, got)
}

/*
TestFilter_Idempotent checks that re-filtering a filtered result with the
same arguments yields an equal slice.
*/
func TestFilter_Idempotent(t *testing.T) {
	items := fixtureItems()
	criteria := catalog.Criteria{Band: catalog.BandAll, Search: "e"}

	once := catalog.Filter(items, criteria, subscription.TierEssential)
	twice := catalog.Filter(once, criteria, subscription.TierEssential)

	assert.Equal(t, once, twice)
}

func TestFilter_EmptyInput(t *testing.T) {
	got := catalog.Filter(nil, catalog.Criteria{}, subscription.TierPro)
	assert.Empty(t, got)
}
