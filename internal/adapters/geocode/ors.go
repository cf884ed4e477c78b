package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"
)

// ORSGeocoder resolves place names with the OpenRouteService /geocode/search endpoint.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewORSGeocoder(apiKey string) (*ORSGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		session: newClient(),
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
	}, nil
}

type orsGeocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func (o *ORSGeocoder) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := normalize(place)
	if norm == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w: empty place name", ErrNotFound)
	}

	q := url.Values{}
	q.Set("text", norm)
	q.Set("size", "1")

	req, err := newGetRequest(ctx, o.baseURL+"/geocode/search?"+q.Encode(), http.Header{
		"Authorization": []string{o.apiKey},
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	resp, err := do(o.session, req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: execute request: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded orsGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", norm, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, ErrNotFound)
	}

	// ORS returns GeoJSON order: [lon, lat].
	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: invalid coordinate format", norm)
	}

	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, nil
}
