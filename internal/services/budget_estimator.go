package services

import "travel-planner-service/internal/domain"

// Cost used for a price tier missing from priceTable.
const unknownTierCost = 100

var priceTable = map[domain.PriceTier]int{
	domain.PriceFree:   0,
	domain.PriceLow:    200,
	domain.PriceMedium: 600,
}

// EstimateBudget sums the tier cost of every POI given.
// Callers pass the whole sampled pool, including POIs the packer dropped.
func EstimateBudget(pois []domain.POI) int {
	total := 0
	for _, p := range pois {
		cost, ok := priceTable[p.Price]
		if !ok {
			cost = unknownTierCost
		}
		total += cost
	}
	return total
}
