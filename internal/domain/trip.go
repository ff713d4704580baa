package domain

import "time"

// Category classifies an activity. User interest tags draw from the
// same enumeration.
type Category string

const (
	CategoryMuseums     Category = "museums"
	CategoryFood        Category = "food"
	CategoryHistoric    Category = "historic"
	CategoryNightlife   Category = "nightlife"
	CategoryNature      Category = "nature"
	CategoryShopping    Category = "shopping"
	CategoryAdventure   Category = "adventure"
	CategoryWellness    Category = "wellness"
	CategoryPhotography Category = "photography"
	CategoryCulture     Category = "culture"
	CategoryBeach       Category = "beach"
)

// Interests lists every selectable interest tag, in display order.
var Interests = []Category{
	CategoryMuseums, CategoryFood, CategoryHistoric, CategoryNightlife,
	CategoryNature, CategoryShopping, CategoryAdventure, CategoryWellness,
	CategoryPhotography, CategoryCulture, CategoryBeach,
}

type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

type BudgetTier string

const (
	TierBudget   BudgetTier = "budget"
	TierModerate BudgetTier = "moderate"
	TierLuxury   BudgetTier = "luxury"
	TierUltra    BudgetTier = "ultra"
)

// BudgetTiers lists the recognized tiers, cheapest first.
var BudgetTiers = []BudgetTier{TierBudget, TierModerate, TierLuxury, TierUltra}

// Activity is one time-boxed entry in a day plan. Immutable after
// creation; owned by its containing Day.
type Activity struct {
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Cost        int      `json:"cost"`
	Category    Category `json:"category"`
	Energy      Energy   `json:"energy"`
}

// Day is one day of an itinerary. Activities are in chronological
// order; lunch and dinner are always present, the other slots may be
// absent when no template matches the selected interests.
type Day struct {
	Day             int        `json:"day"`
	Theme           string     `json:"theme"`
	Activities      []Activity `json:"activities"`
	TotalCost       int        `json:"total_cost"`
	WalkingDistance string     `json:"walking_distance"`
}

// ActivitiesCost recomputes the day total from its activities.
// Consumers showing summary figures must use this rather than trusting
// TotalCost, so the two can never drift.
func (d Day) ActivitiesCost() int {
	sum := 0
	for _, a := range d.Activities {
		sum += a.Cost
	}
	return sum
}

// Itinerary is the ordered day-by-day plan for one trip.
type Itinerary []Day

// TotalCost recomputes the trip total across all days.
func (it Itinerary) TotalCost() int {
	sum := 0
	for _, d := range it {
		sum += d.ActivitiesCost()
	}
	return sum
}

// ActivityCount recomputes the number of activities across all days.
func (it Itinerary) ActivityCount() int {
	n := 0
	for _, d := range it {
		n += len(d.Activities)
	}
	return n
}

// TripRequest carries the user's selections into one generation call.
// Unknown interests never match a template and unknown guardrails are
// accepted no-ops, so old clients stay compatible.
type TripRequest struct {
	Destination string      `json:"destination"`
	Departure   string      `json:"departure"`
	StartDate   string      `json:"start_date,omitempty"` // YYYY-MM-DD, informational
	Days        int         `json:"days"`
	Interests   []Category  `json:"interests,omitempty"`
	Guardrails  []Guardrail `json:"guardrails,omitempty"`
	Budget      BudgetTier  `json:"budget"`
}

// TripView is the full result of one generation: itinerary, forecast
// and value score produced together so they can never be mixed across
// invocations. Stored as one session-scoped unit.
type TripView struct {
	ID          string       `json:"id"`
	Request     TripRequest  `json:"request"`
	Itinerary   Itinerary    `json:"itinerary"`
	Weather     []WeatherDay `json:"weather"`
	Score       ValueScore   `json:"value_score"`
	GeneratedAt time.Time    `json:"generated_at"`
}
