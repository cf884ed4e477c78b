package domain

import "encoding/json"

// RemoteResultKind tags the variant held by a RemoteResult.
type RemoteResultKind string

const (
	RemoteStructured RemoteResultKind = "structured"
	RemoteRaw        RemoteResultKind = "raw"
	RemoteFailure    RemoteResultKind = "failure"
)

// RemoteResult is the outcome of delegating itinerary generation to a
// remote text generator. Exactly one of Document, Raw or Error is meaningful,
// as selected by Kind.
type RemoteResult struct {
	Kind RemoteResultKind `json:"kind"`
	// Document is the generated JSON as returned.
	Document json.RawMessage `json:"document,omitempty"`
	// Plan is a best-effort typed view of Document; nil when the shape does not match.
	Plan  *GeneratedPlan `json:"plan,omitempty"`
	Raw   string         `json:"raw,omitempty"`
	Error string         `json:"error,omitempty"`
}

// GeneratedPlan mirrors the keys the prompt asks the model for.
// Every field is optional and may be missing from the generated document.
type GeneratedPlan struct {
	Itinerary []GeneratedDay `json:"itinerary"`
	LatLon    []float64      `json:"latlon"`
	POIs      []GeneratedPOI `json:"pois"`
	BudgetEst *float64       `json:"budget_est"`
}

type GeneratedDay struct {
	Day        int            `json:"day"`
	Date       string         `json:"date"`
	Activities []GeneratedPOI `json:"activities"`
}

type GeneratedPOI struct {
	Name          string   `json:"name"`
	Lat           *float64 `json:"lat"`
	Lon           *float64 `json:"lon"`
	Category      string   `json:"category"`
	Price         string   `json:"price"`
	DurationHours *float64 `json:"duration_hours"`
}

// Destination returns the generated destination coordinates, falling back
// to the first generated POI with a location.
func (p *GeneratedPlan) Destination() (Coordinates, bool) {
	if p == nil {
		return Coordinates{}, false
	}
	if len(p.LatLon) == 2 {
		return Coordinates{Lat: p.LatLon[0], Lon: p.LatLon[1]}, true
	}
	for _, poi := range p.POIs {
		if poi.Lat != nil && poi.Lon != nil {
			return Coordinates{Lat: *poi.Lat, Lon: *poi.Lon}, true
		}
	}
	return Coordinates{}, false
}

// RawReplyError is returned by a generator whose reply carried no generated
// text field. The body is kept as Text and is shown as a raw result, never
// parsed as a plan.
type RawReplyError struct {
	Text string
}

func (e *RawReplyError) Error() string {
	return "generator reply has no generated text"
}
