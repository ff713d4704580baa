package engine

import (
	"math"
	"math/rand"

	"tripforge/internal/domain"
)

// dailyCosts is the hand-authored tier baseline; unrecognized tiers
// fall back to the moderate figure.
var dailyCosts = map[domain.BudgetTier]int{
	domain.TierBudget:   75,
	domain.TierModerate: 150,
	domain.TierLuxury:   300,
	domain.TierUltra:    500,
}

const defaultDailyCost = 150

// Score rates a destination. The destination parameter is accepted for
// interface stability but does not affect the output yet; ratings are
// randomized until a destination-aware lookup exists.
func Score(rng *rand.Rand, destination string, tier domain.BudgetTier) domain.ValueScore {
	_ = destination

	cost, ok := dailyCosts[tier]
	if !ok {
		cost = defaultDailyCost
	}
	return domain.ValueScore{
		Overall:      round1(uniform(rng, 7.0, 9.5)),
		CostOfLiving: round1(uniform(rng, 6.5, 9.0)),
		ExchangeRate: round1(uniform(rng, 7.0, 9.5)),
		ValueRating:  round1(uniform(rng, 7.5, 9.5)),
		AvgDailyCost: cost,
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
