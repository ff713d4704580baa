package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "tripforge/internal/adapters/http_server"
	"tripforge/internal/adapters/observability"
	"tripforge/internal/adapters/pdf"
	redisad "tripforge/internal/adapters/redis"
	"tripforge/internal/app"
	"tripforge/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// session store
	store := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("redis ping failed")
	}
	cancel()
	log.Info().Str("addr", cfg.RedisAddr).Msg("session store connection ok")

	// deps
	planner := app.NewPlannerService(store, cfg.TripTTL)
	exporter := pdf.New()
	limiter := rate.NewLimiter(rate.Limit(cfg.GenerateRPS), cfg.GenerateRPS)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		P:       planner,
		X:       exporter,
		Limiter: limiter,
		MaxDays: cfg.MaxTripDays,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
