package ports

import (
	"context"
	"travel-planner-service/internal/domain"
)

// Contract for resolving a free-text place name to coordinates.
// Any failure (not found, network, rate limit) is reported as an error;
// callers treat every error as "not found".
type Geocoder interface {
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)
}

// Port: a persistent place name -> coordinates cache.
type GeocodeCache interface {
	// Return cached coordinates for the given place names; misses are absent from the map.
	GetMany(ctx context.Context, places []string) (map[string]domain.Coordinates, error)
	// Store place name -> coordinate mappings.
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
