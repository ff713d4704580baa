package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"tripforge/internal/domain"
	"tripforge/internal/engine"
)

// ForecastDays is fixed regardless of trip length; the forecast window
// does not scale with the itinerary.
const ForecastDays = 14

// PlannerService runs one full generation (itinerary, forecast, value
// score) as a single unit and keeps the result in the session store.
// The engine itself is stateless; all state lives in the store.
type PlannerService struct {
	cache domain.Cache
	ttl   time.Duration
	seed  func() int64
	now   func() time.Time
}

func NewPlannerService(c domain.Cache, ttl time.Duration) *PlannerService {
	return &PlannerService{
		cache: c,
		ttl:   ttl,
		seed:  func() int64 { return time.Now().UnixNano() },
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithSeed overrides the seed source, making generation deterministic.
func (s *PlannerService) WithSeed(seed func() int64) *PlannerService {
	s.seed = seed
	return s
}

// GenerateTrip produces all three structures from one freshly seeded
// source, stamps the result and stores it. A caller that wants a new
// combination must regenerate everything; results from different
// generations are never mixed.
func (s *PlannerService) GenerateTrip(ctx context.Context, req domain.TripRequest) (domain.TripView, error) {
	rng := rand.New(rand.NewSource(s.seed()))

	view := domain.TripView{
		ID:          uuid.NewString(),
		Request:     req,
		Itinerary:   engine.BuildItinerary(rng, req),
		Weather:     engine.Forecast(rng, ForecastDays),
		Score:       engine.Score(rng, req.Destination, req.Budget),
		GeneratedAt: s.now(),
	}

	if err := s.cache.Set(ctx, tripKey(view.ID), view, s.ttl); err != nil {
		return domain.TripView{}, fmt.Errorf("store trip %s: %w", view.ID, err)
	}
	return view, nil
}

// GetTrip returns a previously generated trip, or ErrNotFound once the
// session entry has expired.
func (s *PlannerService) GetTrip(ctx context.Context, id string) (domain.TripView, error) {
	var view domain.TripView
	ok, err := s.cache.Get(ctx, tripKey(id), &view)
	if err != nil {
		return domain.TripView{}, fmt.Errorf("load trip %s: %w", id, err)
	}
	if !ok {
		return domain.TripView{}, domain.ErrNotFound
	}
	return view, nil
}

func tripKey(id string) string { return "trip:" + id }
