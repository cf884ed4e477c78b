package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"
)

var ErrNotFound = errors.New("place not found")

// NominatimGeocoder resolves place names with an OpenStreetMap Nominatim instance.
// Only the first match is used.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatimGeocoder(baseURL, userAgent string) (*NominatimGeocoder, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("nominatim base url is empty")
	}
	// Nominatim's usage policy rejects requests without an identifying agent.
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}

	return &NominatimGeocoder{
		session:   newClient(),
		baseURL:   baseURL,
		userAgent: userAgent,
	}, nil
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	norm := normalize(place)
	if norm == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w: empty place name", ErrNotFound)
	}

	q := url.Values{}
	q.Set("q", norm)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := newGetRequest(ctx, g.baseURL+"/search?"+q.Encode(), http.Header{
		"User-Agent": []string{g.userAgent},
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	resp, err := do(g.session, req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: execute request: %w", norm, err)
	}
	defer resp.Body.Close()

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", norm, err)
	}
	if len(places) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, ErrNotFound)
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lat %q: %w", norm, places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lon %q: %w", norm, places[0].Lon, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
