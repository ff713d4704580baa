package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"tripforge/internal/domain"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	TripTTL      time.Duration
	MaxTripDays  int
	GenerateRPS  int
	BatchWorkers int
	BatchOutDir  string
}

func Load() Config {
	// best-effort .env for local development
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisDB:      atoi("REDIS_DB", 0),
		RedisPass:    env("REDIS_PASSWORD", ""),
		TripTTL:      time.Duration(atoi("TRIP_TTL_SECONDS", 3600)) * time.Second,
		MaxTripDays:  atoi("MAX_TRIP_DAYS", 30),
		GenerateRPS:  atoi("GENERATE_RPS", 10),
		BatchWorkers: atoi("BATCH_WORKERS", 4),
		BatchOutDir:  env("BATCH_OUT_DIR", "guides"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// SampleTrips feeds the batch guide generator.
var SampleTrips = []domain.TripRequest{
	{Destination: "Paris", Departure: "New York", Days: 5, Budget: domain.TierModerate,
		Interests: []domain.Category{domain.CategoryMuseums, domain.CategoryFood, domain.CategoryCulture}},
	{Destination: "Tokyo", Departure: "San Francisco", Days: 7, Budget: domain.TierLuxury,
		Interests: []domain.Category{domain.CategoryFood, domain.CategoryShopping, domain.CategoryNightlife}},
	{Destination: "Bali", Departure: "Sydney", Days: 10, Budget: domain.TierBudget,
		Interests: []domain.Category{domain.CategoryBeach, domain.CategoryNature, domain.CategoryWellness}},
	{Destination: "Rome", Departure: "London", Days: 4, Budget: domain.TierModerate,
		Interests: []domain.Category{domain.CategoryHistoric, domain.CategoryFood},
		Guardrails: []domain.Guardrail{domain.GuardrailKids}},
	{Destination: "Reykjavik", Departure: "Berlin", Days: 6, Budget: domain.TierUltra,
		Interests: []domain.Category{domain.CategoryNature, domain.CategoryPhotography, domain.CategoryAdventure}},
}
