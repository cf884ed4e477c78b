package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"
	"travel-planner-service/internal/ports"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Number of candidate POIs sampled per trip day.
const poisPerDay = 4

type SynthesisRequest struct {
	Destination string
	StartDate   time.Time
	Days        int
	Budget      int
	Interests   []string
}

// SynthesizeItinerary builds a random itinerary around the geocoded destination.
//
// Geocoding is the only failure path: any geocoder error (including "not found")
// yields a *domain.GeocodeError and no itinerary. The call is not retried.
func SynthesizeItinerary(
	ctx context.Context,
	req SynthesisRequest,
	geocoder ports.Geocoder,
	rng ports.RandomSource,
) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.Synthesize")(&err)

	if geocoder == nil || rng == nil {
		return nil, errors.New("synthesize itinerary: geocoder and random source must be non-nil")
	}
	if req.Days < 1 {
		return nil, &domain.ValidationError{Field: "days", Message: "must be at least 1"}
	}

	center, err := geocoder.Geocode(ctx, req.Destination)
	if err != nil {
		logrus.WithFields(obs.Fields(ctx)).WithError(err).
			WithField("place", req.Destination).Warn("destination geocode failed")
		return nil, &domain.GeocodeError{Place: req.Destination, Err: err}
	}

	startDate := dateOnly(req.StartDate)
	pois := SamplePOIs(rng, center, req.Interests, req.Days*poisPerDay)
	days := PackDays(pois, startDate, req.Days)

	return &domain.Itinerary{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		DestinationName: strings.TrimSpace(req.Destination),
		Destination:     center,
		StartDate:       startDate,
		Budget:          req.Budget,
		Interests:       append([]string(nil), req.Interests...),
		Days:            days,
		POIs:            pois,
		BudgetEstimate:  EstimateBudget(pois),
	}, nil
}

// dateOnly truncates t to midnight UTC of its calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
