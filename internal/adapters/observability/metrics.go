package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripforge", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tripforge", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	TripsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripforge", Name: "trips_generated_total", Help: "Completed itinerary generations."},
		[]string{"tier"},
	)
	GenerationLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tripforge", Name: "trip_generation_duration_seconds",
			Help:    "Full generation (itinerary+forecast+score) duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
	GuideExports = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripforge", Name: "guide_exports_total", Help: "PDF guide exports."},
		[]string{"outcome"}, // outcome: ok|error
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripforge", Name: "cache_events_total", Help: "Session store hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

// Serve starts the standalone metrics listener when METRICS_ADDR is
// set; the API also mounts /metrics on its own mux.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, TripsGenerated, GenerationLatency, GuideExports, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveGeneration(tier string, dur time.Duration) {
	TripsGenerated.WithLabelValues(tier).Inc()
	GenerationLatency.Observe(dur.Seconds())
}

func ObserveExport(outcome string) { // outcome: ok|error
	GuideExports.WithLabelValues(outcome).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}
