package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"
	"travel-planner-service/internal/ports"

	"github.com/sirupsen/logrus"
)

// Planner serves generate actions for interactive sessions.
//
// Each session owns one current-result slot in Store; every generate action
// replaces it wholesale with either a plan or an error. Calls for the same
// session never overlap: a second call made while one is running fails with
// domain.ErrGenerationInProgress and leaves the slot untouched. The built-in
// guard covers one process only; set Locker when several instances share a
// Store.
type Planner struct {
	Geocoder ports.Geocoder
	// Generator is the remote path; nil forces local synthesis.
	Generator ports.ItineraryGenerator
	Store     ports.ResultStore
	// Locker is optional and extends the overlap guard across instances.
	Locker ports.SessionLocker
	// NewRandom returns the random source for one synthesis run.
	NewRandom func() ports.RandomSource
	Now       func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewPlanner(geocoder ports.Geocoder, generator ports.ItineraryGenerator, store ports.ResultStore) *Planner {
	return &Planner{
		Geocoder:  geocoder,
		Generator: generator,
		Store:     store,
		NewRandom: func() ports.RandomSource {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		Now: time.Now,
	}
}

// RemoteEnabled reports whether a remote generator is configured.
func (p *Planner) RemoteEnabled() bool { return p.Generator != nil }

// Generate runs one generate action for sessionID and stores its outcome.
//
// The returned result is what was stored. The error is non-nil when the
// stored result is a failure, or when the request was rejected before
// anything was stored (validation, overlapping call).
func (p *Planner) Generate(
	ctx context.Context,
	sessionID string,
	req domain.PlanRequest,
) (_ *domain.PlanResult, err error) {
	defer obs.Time(ctx, "planner.Generate")(&err)

	if sessionID == "" {
		return nil, errors.New("planner generate: session id must be non-empty")
	}

	req, err = ValidatePlanRequest(req)
	if err != nil {
		return nil, err
	}

	if !p.acquire(sessionID) {
		return nil, domain.ErrGenerationInProgress
	}
	defer p.release(sessionID)

	if p.Locker != nil {
		unlock, ok, lockErr := p.Locker.Acquire(ctx, sessionID)
		if lockErr != nil {
			return nil, fmt.Errorf("planner generate: lock session %q: %w", sessionID, lockErr)
		}
		if !ok {
			return nil, domain.ErrGenerationInProgress
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				logrus.WithFields(obs.Fields(ctx)).WithError(err).Warn("session unlock failed")
			}
		}()
	}

	synth := SynthesisRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		Days:        req.Days,
		Budget:      req.Budget,
		Interests:   req.Interests,
	}

	result := &domain.PlanResult{
		Source:    domain.SourceLocal,
		CreatedAt: p.Now().UTC(),
		Request:   req,
	}

	var genErr error
	if req.UseRemote && p.RemoteEnabled() {
		result.Source = domain.SourceRemote
		genErr = p.generateRemote(ctx, synth, result)
	} else {
		if req.UseRemote {
			logrus.WithFields(obs.Fields(ctx)).Info("remote generation requested but not configured; using local synthesis")
		}
		genErr = p.generateLocal(ctx, synth, result)
	}

	if genErr == nil {
		genErr = p.resolveOrigin(ctx, req.Origin, result)
	}

	if genErr != nil {
		result.Error = genErr.Error()
		result.Itinerary = nil
		result.Origin = nil
	}

	if putErr := p.Store.Put(ctx, sessionID, result); putErr != nil {
		return nil, fmt.Errorf("planner generate: store result for session %q: %w", sessionID, putErr)
	}

	return result, genErr
}

// Current returns the session's stored result.
func (p *Planner) Current(ctx context.Context, sessionID string) (*domain.PlanResult, error) {
	res, ok, err := p.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("planner current: load result for session %q: %w", sessionID, err)
	}
	if !ok {
		return nil, domain.ErrNoItinerary
	}
	return res, nil
}

func (p *Planner) generateLocal(ctx context.Context, req SynthesisRequest, result *domain.PlanResult) error {
	it, err := SynthesizeItinerary(ctx, req, p.Geocoder, p.NewRandom())
	if err != nil {
		return err
	}
	result.Itinerary = it
	return nil
}

func (p *Planner) generateRemote(ctx context.Context, req SynthesisRequest, result *domain.PlanResult) error {
	remote := GenerateRemoteItinerary(ctx, req, p.Generator)
	result.Remote = &remote

	if remote.Kind == domain.RemoteFailure {
		return fmt.Errorf("%w: %s", domain.ErrRemoteGeneration, remote.Error)
	}
	return nil
}

// resolveOrigin geocodes the starting location for the map view.
func (p *Planner) resolveOrigin(ctx context.Context, origin string, result *domain.PlanResult) error {
	coords, err := p.Geocoder.Geocode(ctx, origin)
	if err != nil {
		logrus.WithFields(obs.Fields(ctx)).WithError(err).
			WithField("place", origin).Warn("origin geocode failed")
		return &domain.GeocodeError{Place: origin, Err: err}
	}

	result.Origin = &coords
	if result.Itinerary != nil {
		result.Itinerary.OriginName = origin
		result.Itinerary.Origin = coords
	}
	return nil
}

func (p *Planner) acquire(sessionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inFlight == nil {
		p.inFlight = make(map[string]struct{})
	}
	if _, busy := p.inFlight[sessionID]; busy {
		return false
	}
	p.inFlight[sessionID] = struct{}{}
	return true
}

func (p *Planner) release(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, sessionID)
}
