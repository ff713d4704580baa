package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/domain"
	"tripforge/internal/engine"
)

func TestForecast_LengthAndIndices(t *testing.T) {
	for _, days := range []int{1, 7, 14, 30} {
		fc := engine.Forecast(rand.New(rand.NewSource(1)), days)
		require.Len(t, fc, days)
		for i, w := range fc {
			assert.Equal(t, i+1, w.Day)
		}
	}
}

func TestForecast_Bounds(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		fc := engine.Forecast(rand.New(rand.NewSource(seed)), 14)
		for _, w := range fc {
			assert.GreaterOrEqual(t, w.Temp, 65)
			assert.LessOrEqual(t, w.Temp, 85)
			assert.GreaterOrEqual(t, w.UVIndex, 3)
			assert.LessOrEqual(t, w.UVIndex, 10)
			assert.Contains(t, domain.Conditions, w.Condition)

			if w.Condition == domain.ConditionRainy {
				assert.LessOrEqual(t, w.Precipitation, 30)
			} else {
				assert.LessOrEqual(t, w.Precipitation, 10)
			}
			assert.GreaterOrEqual(t, w.Precipitation, 0)
		}
	}
}

func TestForecast_DaysAreIndependentDraws(t *testing.T) {
	// not a smoothing model: over enough days all four conditions show up
	fc := engine.Forecast(rand.New(rand.NewSource(5)), 200)
	seen := map[domain.Condition]bool{}
	for _, w := range fc {
		seen[w.Condition] = true
	}
	assert.Len(t, seen, len(domain.Conditions))
}
