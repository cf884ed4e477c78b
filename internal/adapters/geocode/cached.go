package geocode

import (
	"context"
	"errors"
	"fmt"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"
	"travel-planner-service/internal/ports"

	"github.com/sirupsen/logrus"
)

// CachedGeocoder checks a persistent cache before delegating to the wrapped geocoder.
// Only successful lookups are cached; misses are asked again next time.
type CachedGeocoder struct {
	next  ports.Geocoder
	cache ports.GeocodeCache
}

func NewCachedGeocoder(next ports.Geocoder, cache ports.GeocodeCache) (*CachedGeocoder, error) {
	if next == nil {
		return nil, errors.New("cached geocoder: wrapped geocoder is nil")
	}
	return &CachedGeocoder{next: next, cache: cache}, nil
}

func (c *CachedGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	key := normalize(place)

	if c.cache != nil && key != "" {
		hits, err := c.cache.GetMany(ctx, []string{key})
		if err != nil {
			// A broken cache must not block planning.
			logrus.WithFields(obs.Fields(ctx)).WithError(err).Warn("geocode cache read failed")
		} else if coords, ok := hits[key]; ok {
			return coords, nil
		}
	}

	coords, err := c.next.Geocode(ctx, place)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("cached geocoder: %w", err)
	}

	if c.cache != nil && key != "" {
		if err := c.cache.PutMany(ctx, map[string]domain.Coordinates{key: coords}); err != nil {
			logrus.WithFields(obs.Fields(ctx)).WithError(err).Warn("geocode cache write failed")
		}
	}

	return coords, nil
}
