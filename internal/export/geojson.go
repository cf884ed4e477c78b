package export

import (
	"fmt"
	"travel-planner-service/internal/domain"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry holds either a Point ([lon, lat]) or a LineString ([[lon, lat], ...]).
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// Marker roles carried in the "role" property.
const (
	RoleOrigin      = "origin"
	RoleDestination = "destination"
	RoleRoute       = "route"
	RolePOI         = "poi"
)

func point(c domain.Coordinates, props map[string]any) Feature {
	return Feature{
		Type:       "Feature",
		Geometry:   Geometry{Type: "Point", Coordinates: c.CoordsToList()},
		Properties: props,
	}
}

// MapView draws the origin and destination markers, a straight line between
// them, and one point per sampled POI.
func MapView(res *domain.PlanResult) (*FeatureCollection, error) {
	if res == nil || res.Failed() || res.Origin == nil {
		return nil, ErrNothingToExport
	}

	dest, ok := destination(res)
	if !ok {
		return nil, ErrNothingToExport
	}
	origin := *res.Origin

	fc := &FeatureCollection{Type: "FeatureCollection"}
	fc.Features = append(fc.Features,
		point(origin, map[string]any{"role": RoleOrigin, "popup": "Starting location", "color": "green"}),
		point(dest, map[string]any{"role": RoleDestination, "popup": "Destination", "color": "red"}),
		Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: [][]float64{origin.CoordsToList(), dest.CoordsToList()},
			},
			Properties: map[string]any{"role": RoleRoute, "color": "blue", "weight": 4, "opacity": 0.7},
		},
	)

	for _, p := range pois(res) {
		fc.Features = append(fc.Features, point(p.Coordinates(), map[string]any{
			"role":    RolePOI,
			"name":    p.Name,
			"tooltip": p.Name,
			"popup":   fmt.Sprintf("<b>%s</b><br>%s - %s - %sh", p.Name, p.Category, p.Price, formatHours(p.DurationHours)),
		}))
	}
	return fc, nil
}

func destination(res *domain.PlanResult) (domain.Coordinates, bool) {
	if res.Itinerary != nil {
		return res.Itinerary.Destination, true
	}
	if res.Remote != nil {
		return res.Remote.Plan.Destination()
	}
	return domain.Coordinates{}, false
}

// pois returns the POIs to plot; generated POIs without a location are skipped.
func pois(res *domain.PlanResult) []domain.POI {
	if res.Itinerary != nil {
		return res.Itinerary.POIs
	}
	if res.Remote == nil || res.Remote.Plan == nil {
		return nil
	}

	var out []domain.POI
	for _, g := range res.Remote.Plan.POIs {
		if g.Lat == nil || g.Lon == nil {
			continue
		}
		p := domain.POI{
			Name:     g.Name,
			Lat:      *g.Lat,
			Lon:      *g.Lon,
			Category: g.Category,
			Price:    domain.PriceTier(g.Price),
		}
		if g.DurationHours != nil {
			p.DurationHours = *g.DurationHours
		}
		out = append(out, p)
	}
	return out
}
