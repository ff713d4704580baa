package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a trip is unknown or its session entry
// has expired.
var ErrNotFound = errors.New("not found")

// Cache is the session store: generated trips live here for one TTL
// and nowhere else.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// GuideExporter renders a complete trip view into a downloadable
// document. Export failure is recoverable: the view stays valid.
type GuideExporter interface {
	Guide(view TripView) ([]byte, error)
}
