package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"travel-planner-service/internal/domain"
)

// scriptedRandom replays fixed draws, cycling when exhausted.
type scriptedRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedRandom) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedRandom) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

var errNoMatch = errors.New("no match")

type fakeGeocoder struct {
	places map[string]domain.Coordinates

	mu    sync.Mutex
	calls []string
}

func newFakeGeocoder() *fakeGeocoder {
	return &fakeGeocoder{places: map[string]domain.Coordinates{
		"bengaluru, india": {Lat: 12.97, Lon: 77.59},
		"mysuru, india":    {Lat: 12.2958, Lon: 76.6394},
		"paris, france":    {Lat: 48.8566, Lon: 2.3522},
	}}
}

func (g *fakeGeocoder) Geocode(_ context.Context, place string) (domain.Coordinates, error) {
	g.mu.Lock()
	g.calls = append(g.calls, place)
	g.mu.Unlock()

	c, ok := g.places[strings.ToLower(strings.TrimSpace(place))]
	if !ok {
		return domain.Coordinates{}, errNoMatch
	}
	return c, nil
}

// fakeGenerator returns text or err; when block is set it waits for the
// channel to close after signalling entered.
type fakeGenerator struct {
	text string
	err  error

	entered chan struct{}
	block   chan struct{}

	mu      sync.Mutex
	prompts []string
	ctxs    []context.Context
}

func (g *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.ctxs = append(g.ctxs, ctx)
	g.mu.Unlock()

	if g.block != nil {
		close(g.entered)
		select {
		case <-g.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.text, g.err
}
