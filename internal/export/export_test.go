package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"travel-planner-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func localResult() *domain.PlanResult {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cafe := domain.POI{Name: "Cafe Spot 1", Lat: 12.97, Lon: 77.59, Category: "cafe", Price: domain.PriceLow, DurationHours: 1.5}
	museum := domain.POI{Name: "Museum Spot 2", Lat: 12.98, Lon: 77.60, Category: "museum", Price: domain.PriceFree, DurationHours: 3}
	dropped := domain.POI{Name: "Park Spot 3", Lat: 12.96, Lon: 77.58, Category: "park", Price: domain.PriceMedium, DurationHours: 2}

	return &domain.PlanResult{
		Source:  domain.SourceLocal,
		Request: domain.PlanRequest{Origin: "Mysuru, India", Destination: "Bengaluru, India", StartDate: start, Days: 2, Budget: 3000},
		Origin:  &domain.Coordinates{Lat: 12.29, Lon: 76.64},
		Itinerary: &domain.Itinerary{
			Destination: domain.Coordinates{Lat: 12.97, Lon: 77.59},
			StartDate:   start,
			Days: []domain.DayPlan{
				{Day: 1, Date: start, Activities: []domain.POI{cafe, museum}},
				{Day: 2, Date: start.AddDate(0, 0, 1), Activities: []domain.POI{}},
			},
			POIs:           []domain.POI{cafe, museum, dropped},
			BudgetEstimate: 800,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, localResult()))

	want := strings.Join([]string{
		"day,date,name,category,duration_hours,price",
		"1,2026-03-01,Cafe Spot 1,cafe,1.5,low",
		"1,2026-03-01,Museum Spot 2,museum,3,free",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVRemotePlan(t *testing.T) {
	res := &domain.PlanResult{
		Source: domain.SourceRemote,
		Remote: &domain.RemoteResult{
			Kind: domain.RemoteStructured,
			Plan: &domain.GeneratedPlan{Itinerary: []domain.GeneratedDay{{
				Day:  1,
				Date: "2026-03-01",
				Activities: []domain.GeneratedPOI{
					{Name: "Lalbagh, Garden", Category: "park", Price: "free", DurationHours: f(2)},
					{Name: "Street food"},
				},
			}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res))
	assert.Equal(t,
		"day,date,name,category,duration_hours,price\n"+
			"1,2026-03-01,\"Lalbagh, Garden\",park,2,free\n"+
			"1,2026-03-01,Street food,,,\n",
		buf.String())
}

func TestWriteCSVNothingToExport(t *testing.T) {
	var buf bytes.Buffer

	assert.ErrorIs(t, WriteCSV(&buf, nil), ErrNothingToExport)
	assert.ErrorIs(t, WriteCSV(&buf, &domain.PlanResult{Error: "Could not geocode 'x'. Try another city."}), ErrNothingToExport)
	assert.ErrorIs(t, WriteCSV(&buf, &domain.PlanResult{Remote: &domain.RemoteResult{Kind: domain.RemoteRaw, Raw: "hello"}}), ErrNothingToExport)
	assert.Empty(t, buf.String())
}

func TestMapView(t *testing.T) {
	fc, err := MapView(localResult())
	require.NoError(t, err)

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 6)

	origin := fc.Features[0]
	assert.Equal(t, RoleOrigin, origin.Properties["role"])
	assert.Equal(t, []float64{76.64, 12.29}, origin.Geometry.Coordinates)

	dest := fc.Features[1]
	assert.Equal(t, RoleDestination, dest.Properties["role"])
	assert.Equal(t, []float64{77.59, 12.97}, dest.Geometry.Coordinates)

	line := fc.Features[2]
	assert.Equal(t, "LineString", line.Geometry.Type)
	assert.Equal(t, [][]float64{{76.64, 12.29}, {77.59, 12.97}}, line.Geometry.Coordinates)

	// every sampled POI is plotted, scheduled or not
	assert.Equal(t, "Park Spot 3", fc.Features[5].Properties["name"])
	assert.Equal(t, "<b>Cafe Spot 1</b><br>cafe - low - 1.5h", fc.Features[3].Properties["popup"])

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"Point","coordinates":[76.64,12.29]`)
}

func TestMapViewRemoteFallsBackToFirstPOI(t *testing.T) {
	res := &domain.PlanResult{
		Source: domain.SourceRemote,
		Origin: &domain.Coordinates{Lat: 1, Lon: 2},
		Remote: &domain.RemoteResult{
			Kind: domain.RemoteStructured,
			Plan: &domain.GeneratedPlan{POIs: []domain.GeneratedPOI{
				{Name: "No location"},
				{Name: "Fort", Lat: f(10), Lon: f(20), Category: "historic", Price: "low"},
			}},
		},
	}

	fc, err := MapView(res)
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)
	assert.Equal(t, []float64{20, 10}, fc.Features[1].Geometry.Coordinates)
	assert.Equal(t, "Fort", fc.Features[3].Properties["name"])
}

func TestMapViewWithoutCoordinates(t *testing.T) {
	_, err := MapView(&domain.PlanResult{Origin: &domain.Coordinates{}, Remote: &domain.RemoteResult{Kind: domain.RemoteRaw}})
	assert.ErrorIs(t, err, ErrNothingToExport)

	noOrigin := localResult()
	noOrigin.Origin = nil
	_, err = MapView(noOrigin)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestSummarize(t *testing.T) {
	s, ok := Summarize(localResult())
	require.True(t, ok)
	assert.Equal(t, Summary{Destination: "Bengaluru, India", StartDate: "2026-03-01", EndDate: "2026-03-02", EstimatedCost: 800}, s)

	remote := &domain.PlanResult{
		Request: domain.PlanRequest{Destination: "Goa, India", StartDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), Days: 3, Budget: 4500},
		Remote:  &domain.RemoteResult{Kind: domain.RemoteRaw, Raw: "not json"},
	}
	s, ok = Summarize(remote)
	require.True(t, ok)
	assert.Equal(t, "2026-05-12", s.EndDate)
	assert.Equal(t, 4500.0, s.EstimatedCost)

	_, ok = Summarize(&domain.PlanResult{Error: "boom"})
	assert.False(t, ok)
}
