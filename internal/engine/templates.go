package engine

import (
	"sort"

	"tripforge/internal/domain"
)

// template is static reference data: one activity that can fill a slot
// for a given interest tag. NoWalkTitle, when set, is the alternate
// title used under the no_walking_tours guardrail instead of rewriting
// the title by substring.
type template struct {
	Title       string
	Description string
	Cost        int
	Category    domain.Category
	NoWalkTitle string
}

// Slot tables, keyed by interest tag. Not every interest has an entry
// in every slot.
var morningTemplates = map[domain.Category]template{
	domain.CategoryMuseums:  {Title: "Local Art Museum", Description: "Explore contemporary and classical art collections", Cost: 15, Category: domain.CategoryCulture},
	domain.CategoryNature:   {Title: "National Park Exploration", Description: "Scenic trails and wildlife viewing", Cost: 0, Category: domain.CategoryNature},
	domain.CategoryHistoric: {Title: "Historical Walking Tour", Description: "Discover ancient architecture and stories", Cost: 10, Category: domain.CategoryHistoric, NoWalkTitle: "Historical Bus Tour"},
	domain.CategoryFood:     {Title: "Food Market Tour", Description: "Sample local delicacies and fresh produce", Cost: 20, Category: domain.CategoryFood},
	domain.CategoryWellness: {Title: "Morning Yoga Session", Description: "Beach-side meditation and stretching", Cost: 25, Category: domain.CategoryWellness},
}

var afternoonTemplates = map[domain.Category]template{
	domain.CategoryShopping:    {Title: "Artisan Market Visit", Description: "Local crafts and unique souvenirs", Cost: 0, Category: domain.CategoryShopping},
	domain.CategoryBeach:       {Title: "Beach Time & Water Sports", Description: "Relax or try snorkeling/surfing", Cost: 30, Category: domain.CategoryBeach},
	domain.CategoryCulture:     {Title: "Cultural Center Tour", Description: "Traditional performances and exhibits", Cost: 12, Category: domain.CategoryCulture},
	domain.CategoryAdventure:   {Title: "Adventure Activity", Description: "Zip-lining or rock climbing experience", Cost: 50, Category: domain.CategoryAdventure},
	domain.CategoryPhotography: {Title: "Photo Walk Tour", Description: "Capture stunning vistas and street scenes", Cost: 15, Category: domain.CategoryPhotography},
}

var eveningTemplates = map[domain.Category]template{
	domain.CategoryNightlife: {Title: "Rooftop Bar Experience", Description: "Panoramic views with cocktails", Cost: 40, Category: domain.CategoryNightlife},
	domain.CategoryFood:      {Title: "Fine Dining Experience", Description: "Local specialties in authentic setting", Cost: 60, Category: domain.CategoryFood},
	domain.CategoryCulture:   {Title: "Traditional Show", Description: "Music and dance performance", Cost: 25, Category: domain.CategoryCulture},
}

// Stable key orders so uniform picks are reproducible under a fixed
// seed (map iteration order is not).
var (
	morningKeys   = sortedKeys(morningTemplates)
	afternoonKeys = sortedKeys(afternoonTemplates)
	eveningKeys   = sortedKeys(eveningTemplates)
)

func sortedKeys(m map[domain.Category]template) []domain.Category {
	keys := make([]domain.Category, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
