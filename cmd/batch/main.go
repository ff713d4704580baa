package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tripforge/internal/adapters/observability"
	"tripforge/internal/adapters/pdf"
	"tripforge/internal/app"
	"tripforge/internal/domain"
	"tripforge/internal/shared"
)

// nopStore satisfies the session-store port without a server; batch
// runs never need the trips after the PDFs are written.
type nopStore struct{}

func (nopStore) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (nopStore) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	return nil
}
func (nopStore) Del(ctx context.Context, key string) error { return nil }

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.BatchWorkers).
		Int("trips", len(shared.SampleTrips)).
		Str("out", cfg.BatchOutDir).
		Msg("batch generator starting")

	if err := os.MkdirAll(cfg.BatchOutDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create output dir failed")
	}

	planner := app.NewPlannerService(nopStore{}, 0)
	exporter := pdf.New()
	sem := semaphore.NewWeighted(int64(cfg.BatchWorkers))
	var wg sync.WaitGroup

	for _, req := range shared.SampleTrips {
		req := req

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(req domain.TripRequest) {
			defer wg.Done()
			defer sem.Release(1)

			view, err := planner.GenerateTrip(ctx, req)
			if err != nil {
				log.Warn().Str("destination", req.Destination).Err(err).Msg("generate failed")
				return
			}
			guide, err := exporter.Guide(view)
			if err != nil {
				log.Warn().Str("destination", req.Destination).Err(err).Msg("export failed")
				return
			}

			name := "guide_" + strings.ToLower(strings.ReplaceAll(req.Destination, " ", "_")) + ".pdf"
			path := filepath.Join(cfg.BatchOutDir, name)
			if err := os.WriteFile(path, guide, 0o644); err != nil {
				log.Warn().Str("path", path).Err(err).Msg("write failed")
				return
			}
			log.Info().Str("path", path).Int("days", req.Days).Msg("guide ok")
		}(req)
	}

	wg.Wait()
	log.Info().Msg("batch generation completed")
}
