// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package subscription_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralearn/aura/internal/subscription"
)

/*
TestAccessibleTiers checks the size and content of the accessible set for
every valid tier.
*/
func TestAccessibleTiers(t *testing.T) {
	tests := []struct {
		name string
		tier subscription.Tier
		want []subscription.Tier
	}{
		{"free", subscription.TierFree, []subscription.Tier{
			subscription.TierFree,
		}},
		{"essential", subscription.TierEssential, []subscription.Tier{
			subscription.TierFree, subscription.TierEssential,
		}},
		{"premium", subscription.TierPremium, []subscription.Tier{
			subscription.TierFree, subscription.TierEssential, subscription.TierPremium,
		}},
		{"pro", subscription.TierPro, []subscription.Tier{
			subscription.TierFree, subscription.TierEssential, subscription.TierPremium, subscription.TierPro,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subscription.AccessibleTiers(tt.tier)
			assert.Equal(t, tt.want, got)

			// The free tier is always reachable.
			require.NotEmpty(t, got)
			assert.Equal(t, subscription.TierFree, got[0])
		})
	}
}

/*
TestAccessibleTiers_Monotone verifies that each tier's accessible set is a
superset of the tier below it.
*/
func TestAccessibleTiers_Monotone(t *testing.T) {
	all := subscription.All()
	for i := 1; i < len(all); i++ {
		lower := subscription.AccessibleTiers(all[i-1])
		higher := subscription.AccessibleTiers(all[i])

		assert.Equal(t, len(lower)+1, len(higher))
		assert.Equal(t, lower, higher[:len(lower)])
	}
}

/*
TestAccessibleTiers_InvalidTier checks the defensive fallback: a garbage
tier value degrades to the free set instead of erroring.
*/
func TestAccessibleTiers_InvalidTier(t *testing.T) {
	got := subscription.AccessibleTiers(subscription.Tier("platinum"))
	assert.Equal(t, []subscription.Tier{subscription.TierFree}, got)
}

/*
TestCanAccess exercises the full 4x4 matrix of user tier vs required tier.
*/
func TestCanAccess(t *testing.T) {
	all := subscription.All()

	for userRank, userTier := range all {
		for requiredRank, requiredTier := range all {
			want := requiredRank <= userRank
			got := userTier.CanAccess(requiredTier)
			assert.Equalf(t, want, got, "user=%s required=%s", userTier, requiredTier)
		}
	}
}

/*
TestCanAccess_UnknownRequiredTier checks that malformed content records
fail closed.
*/
func TestCanAccess_UnknownRequiredTier(t *testing.T) {
	assert.False(t, subscription.TierPro.CanAccess(subscription.Tier("vip")))
}

func TestIsValid(t *testing.T) {
	assert.True(t, subscription.TierEssential.IsValid())
	assert.False(t, subscription.Tier("").IsValid())
	assert.False(t, subscription.Tier("Premium").IsValid())
}
