// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

/*
Package subscription defines the plan tiers sold by the Aura platform and the
access hierarchy between them.

Higher tiers inherit access to everything unlocked by lower tiers, so access
checks reduce to a comparison on a fixed total order:

	free < essential < premium < pro

The hierarchy is hardcoded. Tiers are a commercial decision made once per
deployment, not data — inferring the order dynamically would only move the
source of truth somewhere harder to audit.
*/
package subscription

// # Subscription Tiers

// Tier represents a subscription plan level granted to an account.
type Tier string

const (
	// TierFree is the default plan for every visitor and new account.
	TierFree Tier = "free"

	// TierEssential is the entry-level paid plan.
	TierEssential Tier = "essential"

	// TierPremium unlocks the full course catalogue and mock tests.
	TierPremium Tier = "premium"

	// TierPro additionally unlocks oral simulation sessions and coaching.
	TierPro Tier = "pro"
)

// order lists every tier from lowest to highest. Index position is the
// tier's rank in the hierarchy.
var order = []Tier{TierFree, TierEssential, TierPremium, TierPro}

// IsValid reports whether t is a recognised [Tier] value.
func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierEssential, TierPremium, TierPro:
		return true
	}
	return false
}

// index maps a tier to its numeric rank for comparison logic.
//
// Unknown values rank below free so that malformed input never grants
// access it should not have.
func (t Tier) index() int {
	for i, candidate := range order {
		if t == candidate {
			return i
		}
	}
	return -1
}

// # Access Hierarchy

// CanAccess reports whether a user on tier t may open content that
// requires the given tier.
//
// An unrecognised required tier is treated as the highest tier, so
// malformed content records fail closed rather than open.
func (t Tier) CanAccess(required Tier) bool {
	requiredIndex := required.index()
	if requiredIndex < 0 {
		return false
	}
	return t.index() >= requiredIndex
}

// AccessibleTiers returns every tier whose content a user on tier t may
// open, from lowest to highest. The result always contains [TierFree].
//
// An invalid tier degrades to the free set rather than failing: the worst
// outcome of a garbage tier claim is then the public catalogue, never an
// error page or a paid unlock.
func AccessibleTiers(t Tier) []Tier {
	rank := t.index()
	if rank < 0 {
		rank = 0
	}
	accessible := make([]Tier, rank+1)
	copy(accessible, order[:rank+1])
	return accessible
}

// All returns every known tier from lowest to highest.
func All() []Tier {
	all := make([]Tier, len(order))
	copy(all, order)
	return all
}
