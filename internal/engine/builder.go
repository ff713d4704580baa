package engine

import (
	"fmt"
	"math/rand"

	"tripforge/internal/domain"
)

// Fixed slot time windows.
const (
	windowMorning   = "9:00 AM - 11:30 AM"
	windowLunch     = "12:00 PM - 1:30 PM"
	windowAfternoon = "2:00 PM - 5:00 PM"
	windowDinner    = "6:30 PM - 8:00 PM"
	windowEvening   = "8:30 PM - 10:00 PM"
)

// Meal price floors by tier. Anything above moderate pays the luxury
// price; free_activities_only drops meals to the budget floor, never
// to zero.
func lunchCost(tier domain.BudgetTier) int {
	switch tier {
	case domain.TierBudget:
		return 15
	case domain.TierModerate:
		return 25
	default:
		return 45
	}
}

func dinnerCost(tier domain.BudgetTier) int {
	switch tier {
	case domain.TierBudget:
		return 20
	case domain.TierModerate:
		return 35
	default:
		return 65
	}
}

// BuildItinerary produces one day plan per requested day. Each day is
// drawn independently: selections degrade to omission or defaults, so
// the call never fails for enumerated inputs. All randomness comes
// from rng, which makes generation reproducible under a fixed seed.
func BuildItinerary(rng *rand.Rand, req domain.TripRequest) domain.Itinerary {
	guards := domain.NewGuardrailSet(req.Guardrails)
	freeOnly := guards.Has(domain.GuardrailFreeOnly)
	kidsFriendly := guards.Has(domain.GuardrailKids)
	noWalking := guards.Has(domain.GuardrailNoWalking)

	interests := make(map[domain.Category]struct{}, len(req.Interests))
	for _, tag := range req.Interests {
		interests[tag] = struct{}{}
	}
	hasNightlife := false
	if _, ok := interests[domain.CategoryNightlife]; ok {
		hasNightlife = true
	}

	it := make(domain.Itinerary, 0, req.Days)
	for dayNum := 1; dayNum <= req.Days; dayNum++ {
		activities := make([]domain.Activity, 0, 5)

		// Morning: omitted when no template matches the interests.
		if tpl, ok := pick(rng, morningKeys, morningTemplates, interests); ok {
			title := tpl.Title
			if noWalking && tpl.NoWalkTitle != "" {
				title = tpl.NoWalkTitle
			}
			cost := tpl.Cost
			if freeOnly {
				cost = 0
			}
			activities = append(activities, domain.Activity{
				Time:        windowMorning,
				Title:       title,
				Description: tpl.Description,
				Cost:        cost,
				Category:    tpl.Category,
				Energy:      domain.EnergyMedium,
			})
		}

		// Lunch: always present.
		lunch := lunchCost(req.Budget)
		if freeOnly {
			lunch = 15
		}
		lunchTitle := "Local Cuisine Restaurant"
		if guards.Has(domain.GuardrailVegetarian) {
			lunchTitle = "Vegetarian Café"
		}
		activities = append(activities, domain.Activity{
			Time:        windowLunch,
			Title:       lunchTitle,
			Description: "Authentic local flavors and regional specialties",
			Cost:        lunch,
			Category:    domain.CategoryFood,
			Energy:      domain.EnergyLow,
		})

		// Afternoon: same selection rule as morning, no walking rewrite.
		if tpl, ok := pick(rng, afternoonKeys, afternoonTemplates, interests); ok {
			cost := tpl.Cost
			if freeOnly {
				cost = 0
			}
			activities = append(activities, domain.Activity{
				Time:        windowAfternoon,
				Title:       tpl.Title,
				Description: tpl.Description,
				Cost:        cost,
				Category:    tpl.Category,
				Energy:      domain.EnergyMedium,
			})
		}

		// Dinner: always present.
		dinner := dinnerCost(req.Budget)
		if freeOnly {
			dinner = 20
		}
		activities = append(activities, domain.Activity{
			Time:        windowDinner,
			Title:       "Dinner at Local Restaurant",
			Description: "Traditional dishes in cozy atmosphere",
			Cost:        dinner,
			Category:    domain.CategoryFood,
			Energy:      domain.EnergyLow,
		})

		// Evening: nightlife wins when allowed and wanted; otherwise
		// uniform over matching evening templates, falling back to
		// culture. kids_friendly (or free-only) replaces the pick with
		// a zero-cost stroll, so paid or nightlife evenings never reach
		// a family itinerary.
		choice := domain.CategoryCulture
		if !kidsFriendly && hasNightlife {
			choice = domain.CategoryNightlife
		} else if tpl, ok := pickKey(rng, eveningKeys, interests); ok {
			choice = tpl
		}
		if tpl, ok := eveningTemplates[choice]; ok {
			a := domain.Activity{
				Time:        windowEvening,
				Title:       tpl.Title,
				Description: tpl.Description,
				Cost:        tpl.Cost,
				Category:    tpl.Category,
				Energy:      domain.EnergyLow,
			}
			if freeOnly || kidsFriendly {
				a.Title = "Evening Stroll"
				a.Description = "Family-friendly walk along waterfront"
				a.Cost = 0
				a.Category = domain.CategoryNature
			}
			activities = append(activities, a)
		}

		day := domain.Day{
			Day:             dayNum,
			Theme:           dayTheme(dayNum, req.Days),
			Activities:      activities,
			WalkingDistance: walkingDistance(rng, noWalking),
		}
		day.TotalCost = day.ActivitiesCost()
		it = append(it, day)
	}
	return it
}

// pick selects a template uniformly among the keys matching the
// interest set. An empty interest set means "no restriction".
func pick(rng *rand.Rand, keys []domain.Category, table map[domain.Category]template, interests map[domain.Category]struct{}) (template, bool) {
	key, ok := pickKey(rng, keys, interests)
	if !ok {
		return template{}, false
	}
	return table[key], true
}

func pickKey(rng *rand.Rand, keys []domain.Category, interests map[domain.Category]struct{}) (domain.Category, bool) {
	candidates := keys
	if len(interests) > 0 {
		candidates = make([]domain.Category, 0, len(keys))
		for _, k := range keys {
			if _, ok := interests[k]; ok {
				candidates = append(candidates, k)
			}
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rng.Intn(len(candidates))], true
}

func walkingDistance(rng *rand.Rand, noWalking bool) string {
	if noWalking {
		return "0.5 km"
	}
	return fmt.Sprintf("%d km", 3+rng.Intn(6))
}

// dayTheme labels the day by position. The first-day check runs before
// the last-day check, so a 1-day trip is an arrival, not a farewell.
func dayTheme(dayNum, days int) string {
	switch {
	case dayNum == 1:
		return "Arrival & Orientation"
	case dayNum == days:
		return "Farewell & Departure"
	default:
		return fmt.Sprintf("Day %d Exploration", dayNum)
	}
}
