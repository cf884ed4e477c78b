package geocode

import (
	"context"
	"fmt"
	"sync"
	"travel-planner-service/internal/domain"
)

// StaticGeocoder resolves from a fixed table. It backs tests and offline runs
// (GEOCODER_PROVIDER=static) and counts lookups per place.
type StaticGeocoder struct {
	m map[string]domain.Coordinates

	mu    sync.Mutex
	calls map[string]int
}

func NewStaticGeocoder(places map[string]domain.Coordinates) *StaticGeocoder {
	m := make(map[string]domain.Coordinates, len(places))
	for k, v := range places {
		m[normalize(k)] = v
	}
	return &StaticGeocoder{m: m, calls: map[string]int{}}
}

func (s *StaticGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	key := normalize(place)

	s.mu.Lock()
	s.calls[key]++
	s.mu.Unlock()

	c, ok := s.m[key]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", key, ErrNotFound)
	}
	return c, nil
}

// Calls returns how many times place was looked up.
func (s *StaticGeocoder) Calls(place string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[normalize(place)]
}

// DemoPlaces is a small offline table used by GEOCODER_PROVIDER=static.
var DemoPlaces = map[string]domain.Coordinates{
	"Bengaluru, India": {Lat: 12.9716, Lon: 77.5946},
	"Mysuru, India":    {Lat: 12.2958, Lon: 76.6394},
	"Chennai, India":   {Lat: 13.0827, Lon: 80.2707},
	"Mumbai, India":    {Lat: 19.0760, Lon: 72.8777},
	"Paris, France":    {Lat: 48.8566, Lon: 2.3522},
	"London, UK":       {Lat: 51.5072, Lon: -0.1276},
}
