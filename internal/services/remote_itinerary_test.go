package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"travel-planner-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synthesisRequest() SynthesisRequest {
	return SynthesisRequest{
		Destination: "Paris, France",
		StartDate:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		Days:        3,
		Budget:      8000,
		Interests:   []string{"museums", "cafes"},
	}
}

func TestBuildItineraryPrompt(t *testing.T) {
	prompt := BuildItineraryPrompt(synthesisRequest())

	for _, line := range []string{
		"You are a travel planner for students on a budget.",
		"Destination: Paris, France",
		"Start date: 2026-04-05",
		"Days: 3",
		"Budget (INR): 8000",
		"Interests: museums, cafes",
		"itinerary (list of days with activities), latlon (approximate coordinates), pois (list of POIs), budget_est",
	} {
		assert.Contains(t, prompt, line)
	}
}

func TestGenerateRemoteItineraryAppliesTimeout(t *testing.T) {
	gen := &fakeGenerator{text: "{}"}

	res := GenerateRemoteItinerary(context.Background(), synthesisRequest(), gen)
	assert.Equal(t, domain.RemoteStructured, res.Kind)

	require.Len(t, gen.ctxs, 1)
	deadline, ok := gen.ctxs[0].Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(RemoteGenerationTimeout), deadline, 5*time.Second)
}

func TestGenerateRemoteItineraryFailure(t *testing.T) {
	res := GenerateRemoteItinerary(context.Background(), synthesisRequest(), &fakeGenerator{err: errors.New("dial tcp: timeout")})
	assert.Equal(t, domain.RemoteFailure, res.Kind)
	assert.Equal(t, "dial tcp: timeout", res.Error)

	res = GenerateRemoteItinerary(context.Background(), synthesisRequest(), nil)
	assert.Equal(t, domain.RemoteFailure, res.Kind)
	assert.NotEmpty(t, res.Error)
}

func TestGenerateRemoteItineraryRawReply(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("huggingface: %w", &domain.RawReplyError{Text: `{"error":"busy"}`})}

	res := GenerateRemoteItinerary(context.Background(), synthesisRequest(), gen)
	assert.Equal(t, domain.RemoteRaw, res.Kind)
	assert.Equal(t, `{"error":"busy"}`, res.Raw)
	assert.Nil(t, res.Plan)
	assert.Empty(t, res.Error)
}

func TestClassifyGeneratedText(t *testing.T) {
	t.Run("structured", func(t *testing.T) {
		res := ClassifyGeneratedText(`  {"latlon": [48.85, 2.35], "pois": [{"name": "Louvre", "lat": 48.86, "lon": 2.33}], "budget_est": 7500.5}  `)
		require.Equal(t, domain.RemoteStructured, res.Kind)
		require.NotNil(t, res.Plan)
		assert.Equal(t, []float64{48.85, 2.35}, res.Plan.LatLon)
		require.NotNil(t, res.Plan.BudgetEst)
		assert.Equal(t, 7500.5, *res.Plan.BudgetEst)

		dest, ok := res.Plan.Destination()
		require.True(t, ok)
		assert.Equal(t, domain.Coordinates{Lat: 48.85, Lon: 2.35}, dest)
	})

	t.Run("json of another shape", func(t *testing.T) {
		res := ClassifyGeneratedText(`["day one", "day two"]`)
		assert.Equal(t, domain.RemoteStructured, res.Kind)
		assert.Nil(t, res.Plan)
		assert.JSONEq(t, `["day one", "day two"]`, string(res.Document))
	})

	t.Run("raw", func(t *testing.T) {
		res := ClassifyGeneratedText("Sure! Here is your itinerary: {day 1...")
		assert.Equal(t, domain.RemoteRaw, res.Kind)
		assert.Equal(t, "Sure! Here is your itinerary: {day 1...", res.Raw)
		assert.Nil(t, res.Document)
	})

	t.Run("empty", func(t *testing.T) {
		res := ClassifyGeneratedText("   ")
		assert.Equal(t, domain.RemoteRaw, res.Kind)
	})
}
