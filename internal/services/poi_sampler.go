package services

import (
	"fmt"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/ports"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Maximum offset span (degrees) applied around the center on each axis.
// Points land within ±jitterSpan/2; no geodesic correction is applied.
const jitterSpan = 0.08

// SamplePOIs produces count synthetic points of interest around center.
//
// Each POI draws, in order: latitude jitter, longitude jitter, category,
// price tier and duration. With a fixed random source the output is fully
// deterministic. Categories come from interests, or domain.DefaultCategories
// when interests is empty.
func SamplePOIs(rng ports.RandomSource, center domain.Coordinates, interests []string, count int) []domain.POI {
	categories := interests
	if len(categories) == 0 {
		categories = domain.DefaultCategories
	}

	title := cases.Title(language.English)

	pois := make([]domain.POI, 0, max(count, 0))
	for i := 0; i < count; i++ {
		lat := center.Lat + (rng.Float64()-0.5)*jitterSpan
		lon := center.Lon + (rng.Float64()-0.5)*jitterSpan
		category := categories[rng.IntN(len(categories))]
		price := domain.PriceTiers[rng.IntN(len(domain.PriceTiers))]
		duration := domain.ActivityDurations[rng.IntN(len(domain.ActivityDurations))]

		pois = append(pois, domain.POI{
			Name:          fmt.Sprintf("%s Spot %d", title.String(category), i+1),
			Lat:           lat,
			Lon:           lon,
			Category:      category,
			Price:         price,
			DurationHours: duration,
		})
	}

	return pois
}
