package domain

// Guardrail is a user-selected constraint tag. Only a few tags toggle
// transforms in the builder; the rest are accepted and ignored so the
// catalog can grow without breaking older engines.
type Guardrail string

const (
	GuardrailFreeOnly   Guardrail = "free_activities_only"
	GuardrailNoWalking  Guardrail = "no_walking_tours"
	GuardrailKids       Guardrail = "kids_friendly"
	GuardrailVegetarian Guardrail = "vegetarian_required"
)

// GuardrailGroup is one category of the selectable guardrail catalog.
type GuardrailGroup struct {
	Category string      `json:"category"`
	Options  []Guardrail `json:"options"`
}

// GuardrailCatalog is the full selectable catalog, grouped the way the
// form presents it.
var GuardrailCatalog = []GuardrailGroup{
	{Category: "Accessibility", Options: []Guardrail{
		"wheelchair_accessible", "stroller_accessible", "no_stairs", "elevator_required",
	}},
	{Category: "Activity Level", Options: []Guardrail{
		GuardrailNoWalking, "limited_walking", "indoor_only", "outdoor_only",
	}},
	{Category: "Family & Age", Options: []Guardrail{
		GuardrailKids, "family_friendly", "teen_appropriate", "senior_friendly",
	}},
	{Category: "Dietary", Options: []Guardrail{
		GuardrailVegetarian, "vegan_required", "halal_available", "kosher_available", "gluten_free",
	}},
	{Category: "Comfort & Safety", Options: []Guardrail{
		"english_speaking_staff", "well_lit_areas", "high_safety_rating", "lgbtq_friendly",
	}},
	{Category: "Transportation", Options: []Guardrail{
		"public_transit_accessible", "walking_distance", "parking_available",
	}},
	{Category: "Budget", Options: []Guardrail{
		GuardrailFreeOnly, "low_cost_preferred", "no_premium_experiences",
	}},
}

// GuardrailSet is a membership view over selected guardrail tags.
type GuardrailSet map[Guardrail]struct{}

func NewGuardrailSet(tags []Guardrail) GuardrailSet {
	s := make(GuardrailSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s GuardrailSet) Has(g Guardrail) bool {
	_, ok := s[g]
	return ok
}
