package engine

import (
	"math/rand"

	"tripforge/internal/domain"
)

// Forecast synthesizes dayCount daily entries. Days are independent
// draws with no smoothing between neighbors: this is a stand-in for a
// real forecast service, not a weather model. Rainy days get a higher
// precipitation ceiling.
func Forecast(rng *rand.Rand, dayCount int) []domain.WeatherDay {
	out := make([]domain.WeatherDay, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		cond := domain.Conditions[rng.Intn(len(domain.Conditions))]
		precipCeil := 10
		if cond == domain.ConditionRainy {
			precipCeil = 30
		}
		out = append(out, domain.WeatherDay{
			Day:           i + 1,
			Temp:          65 + rng.Intn(21), // [65,85] °F
			Condition:     cond,
			Precipitation: rng.Intn(precipCeil + 1),
			UVIndex:       3 + rng.Intn(8), // [3,10]
		})
	}
	return out
}
