package engine_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/domain"
	"tripforge/internal/engine"
)

const trials = 50

func req(days int, interests []domain.Category, guards []domain.Guardrail, tier domain.BudgetTier) domain.TripRequest {
	return domain.TripRequest{
		Destination: "Lisbon",
		Departure:   "Madrid",
		Days:        days,
		Interests:   interests,
		Guardrails:  guards,
		Budget:      tier,
	}
}

func find(day domain.Day, window string) (domain.Activity, bool) {
	for _, a := range day.Activities {
		if a.Time == window {
			return a, true
		}
	}
	return domain.Activity{}, false
}

func TestBuildItinerary_DayCountAndIndices(t *testing.T) {
	for _, days := range []int{1, 2, 7, 14, 30} {
		for seed := int64(0); seed < trials; seed++ {
			rng := rand.New(rand.NewSource(seed))
			it := engine.BuildItinerary(rng, req(days, nil, nil, domain.TierModerate))
			require.Len(t, it, days)
			for i, d := range it {
				assert.Equal(t, i+1, d.Day)
			}
		}
	}
}

func TestBuildItinerary_MealsAlwaysPresent(t *testing.T) {
	combos := []domain.TripRequest{
		req(5, nil, nil, domain.TierBudget),
		req(5, []domain.Category{domain.CategoryNightlife}, nil, domain.TierLuxury),
		req(5, []domain.Category{domain.CategoryBeach}, []domain.Guardrail{domain.GuardrailFreeOnly}, domain.TierUltra),
		req(5, nil, []domain.Guardrail{domain.GuardrailKids, domain.GuardrailNoWalking}, domain.TierModerate),
	}
	for _, r := range combos {
		for seed := int64(0); seed < trials; seed++ {
			it := engine.BuildItinerary(rand.New(rand.NewSource(seed)), r)
			for _, d := range it {
				lunch, ok := find(d, "12:00 PM - 1:30 PM")
				require.True(t, ok, "lunch missing on day %d", d.Day)
				assert.Equal(t, domain.CategoryFood, lunch.Category)
				assert.Equal(t, domain.EnergyLow, lunch.Energy)

				dinner, ok := find(d, "6:30 PM - 8:00 PM")
				require.True(t, ok, "dinner missing on day %d", d.Day)
				assert.Equal(t, "Dinner at Local Restaurant", dinner.Title)
			}
		}
	}
}

func TestBuildItinerary_FreeActivitiesOnly(t *testing.T) {
	guards := []domain.Guardrail{domain.GuardrailFreeOnly}
	for seed := int64(0); seed < trials; seed++ {
		it := engine.BuildItinerary(rand.New(rand.NewSource(seed)), req(7, nil, guards, domain.TierLuxury))
		for _, d := range it {
			for _, a := range d.Activities {
				switch a.Time {
				case "12:00 PM - 1:30 PM":
					// meals floor at the budget price, never free
					assert.Equal(t, 15, a.Cost)
				case "6:30 PM - 8:00 PM":
					assert.Equal(t, 20, a.Cost)
				default:
					assert.Zero(t, a.Cost, "day %d %q", d.Day, a.Title)
				}
			}
		}
	}
}

func TestBuildItinerary_KidsFriendlySuppressesNightlife(t *testing.T) {
	interests := []domain.Category{domain.CategoryNightlife}
	guards := []domain.Guardrail{domain.GuardrailKids}
	for seed := int64(0); seed < trials; seed++ {
		it := engine.BuildItinerary(rand.New(rand.NewSource(seed)), req(6, interests, guards, domain.TierModerate))
		for _, d := range it {
			evening, ok := find(d, "8:30 PM - 10:00 PM")
			require.True(t, ok)
			assert.NotEqual(t, domain.CategoryNightlife, evening.Category)
			assert.Equal(t, "Evening Stroll", evening.Title)
			assert.Equal(t, domain.CategoryNature, evening.Category)
			assert.Zero(t, evening.Cost)
		}
	}
}

func TestBuildItinerary_NightlifeWinsWithoutKids(t *testing.T) {
	interests := []domain.Category{domain.CategoryNightlife}
	for seed := int64(0); seed < trials; seed++ {
		it := engine.BuildItinerary(rand.New(rand.NewSource(seed)), req(4, interests, nil, domain.TierModerate))
		for _, d := range it {
			evening, ok := find(d, "8:30 PM - 10:00 PM")
			require.True(t, ok)
			assert.Equal(t, domain.CategoryNightlife, evening.Category)
			assert.Equal(t, "Rooftop Bar Experience", evening.Title)

			// nightlife has no morning or afternoon template
			_, morning := find(d, "9:00 AM - 11:30 AM")
			assert.False(t, morning)
			_, afternoon := find(d, "2:00 PM - 5:00 PM")
			assert.False(t, afternoon)
		}
	}
}

func TestBuildItinerary_NoWalkingTours(t *testing.T) {
	interests := []domain.Category{domain.CategoryHistoric}
	guards := []domain.Guardrail{domain.GuardrailNoWalking}
	for seed := int64(0); seed < trials; seed++ {
		it := engine.BuildItinerary(rand.New(rand.NewSource(seed)), req(5, interests, guards, domain.TierModerate))
		for _, d := range it {
			assert.Equal(t, "0.5 km", d.WalkingDistance)
			for _, a := range d.Activities {
				assert.NotContains(t, a.Title, "Walking")
			}
			morning, ok := find(d, "9:00 AM - 11:30 AM")
			require.True(t, ok)
			assert.Equal(t, "Historical Bus Tour", morning.Title)
		}
	}
}

func TestBuildItinerary_WalkingDistanceRange(t *testing.T) {
	for seed := int64(0); seed < trials; seed++ {
		it := engine.BuildItinerary(rand.New(rand.NewSource(seed)), req(10, nil, nil, domain.TierModerate))
		for _, d := range it {
			km, err := strconv.Atoi(strings.TrimSuffix(d.WalkingDistance, " km"))
			require.NoError(t, err, "label %q", d.WalkingDistance)
			assert.GreaterOrEqual(t, km, 3)
			assert.LessOrEqual(t, km, 8)
		}
	}
}

func TestBuildItinerary_TotalCostMatchesActivities(t *testing.T) {
	for seed := int64(0); seed < trials; seed++ {
		it := engine.BuildItinerary(rand.New(rand.NewSource(seed)), req(7, nil, nil, domain.TierLuxury))
		for _, d := range it {
			assert.Equal(t, d.ActivitiesCost(), d.TotalCost)
		}
	}
}

func TestBuildItinerary_ThemeLabels(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	one := engine.BuildItinerary(rng, req(1, nil, nil, domain.TierModerate))
	require.Len(t, one, 1)
	// first-day rule wins the tie on a 1-day trip
	assert.Equal(t, "Arrival & Orientation", one[0].Theme)

	three := engine.BuildItinerary(rng, req(3, nil, nil, domain.TierModerate))
	assert.Equal(t, "Arrival & Orientation", three[0].Theme)
	assert.Equal(t, "Day 2 Exploration", three[1].Theme)
	assert.Equal(t, "Farewell & Departure", three[2].Theme)
}

func TestBuildItinerary_EmptyInterestsMeansNoRestriction(t *testing.T) {
	for seed := int64(0); seed < trials; seed++ {
		it := engine.BuildItinerary(rand.New(rand.NewSource(seed)), req(5, nil, nil, domain.TierBudget))
		for _, d := range it {
			// all five slots fill when every template is a candidate
			require.Len(t, d.Activities, 5)
			windows := []string{"9:00 AM - 11:30 AM", "12:00 PM - 1:30 PM", "2:00 PM - 5:00 PM", "6:30 PM - 8:00 PM", "8:30 PM - 10:00 PM"}
			for i, a := range d.Activities {
				assert.Equal(t, windows[i], a.Time, "chronological order")
			}
			assert.Equal(t, domain.EnergyMedium, d.Activities[0].Energy)
			assert.Equal(t, domain.EnergyMedium, d.Activities[2].Energy)
			assert.Equal(t, domain.EnergyLow, d.Activities[4].Energy)
		}
	}
}

func TestBuildItinerary_MealCostsByTier(t *testing.T) {
	cases := []struct {
		tier          domain.BudgetTier
		lunch, dinner int
	}{
		{domain.TierBudget, 15, 20},
		{domain.TierModerate, 25, 35},
		{domain.TierLuxury, 45, 65},
		{domain.TierUltra, 45, 65},
		{domain.BudgetTier("something_else"), 45, 65},
	}
	for _, tc := range cases {
		t.Run(string(tc.tier), func(t *testing.T) {
			it := engine.BuildItinerary(rand.New(rand.NewSource(7)), req(3, nil, nil, tc.tier))
			for _, d := range it {
				lunch, _ := find(d, "12:00 PM - 1:30 PM")
				dinner, _ := find(d, "6:30 PM - 8:00 PM")
				assert.Equal(t, tc.lunch, lunch.Cost)
				assert.Equal(t, tc.dinner, dinner.Cost)
			}
		})
	}
}

func TestBuildItinerary_VegetarianLunch(t *testing.T) {
	guards := []domain.Guardrail{domain.GuardrailVegetarian}
	it := engine.BuildItinerary(rand.New(rand.NewSource(3)), req(4, nil, guards, domain.TierModerate))
	for _, d := range it {
		lunch, ok := find(d, "12:00 PM - 1:30 PM")
		require.True(t, ok)
		assert.Equal(t, "Vegetarian Café", lunch.Title)
	}
}

func TestBuildItinerary_UnknownGuardrailIsNoOp(t *testing.T) {
	base := req(5, []domain.Category{domain.CategoryNature, domain.CategoryBeach}, nil, domain.TierModerate)
	withUnknown := base
	withUnknown.Guardrails = []domain.Guardrail{"hover_board_required"}

	a := engine.BuildItinerary(rand.New(rand.NewSource(11)), base)
	b := engine.BuildItinerary(rand.New(rand.NewSource(11)), withUnknown)
	assert.Equal(t, a, b)
}

func TestBuildItinerary_DeterministicUnderFixedSeed(t *testing.T) {
	r := req(9, nil, nil, domain.TierModerate)
	a := engine.BuildItinerary(rand.New(rand.NewSource(42)), r)
	b := engine.BuildItinerary(rand.New(rand.NewSource(42)), r)
	require.Equal(t, a, b)

	c := engine.BuildItinerary(rand.New(rand.NewSource(43)), r)
	assert.NotEqual(t, fmt.Sprintf("%+v", a), fmt.Sprintf("%+v", c), "different seeds should diverge")
}
