package domain

// PriceTier is the qualitative cost bucket of a point of interest.
type PriceTier string

const (
	PriceFree   PriceTier = "free"
	PriceLow    PriceTier = "low"
	PriceMedium PriceTier = "medium"
)

// PriceTiers lists the tiers a sampled POI can be drawn from, in draw order.
var PriceTiers = []PriceTier{PriceFree, PriceLow, PriceMedium}

// ActivityDurations lists the visit lengths (hours) a sampled POI can be drawn from.
var ActivityDurations = []float64{0.5, 1, 1.5, 2, 3}

// DefaultCategories is the sampling vocabulary used when no interests are selected.
var DefaultCategories = []string{"cafe", "museum", "park", "market", "historic"}

// InterestOptions is the vocabulary offered to users when picking interests.
var InterestOptions = []string{
	"cafes",
	"museums",
	"nature/parks",
	"shopping/markets",
	"history",
	"adventure",
	"nightlife",
	"budget-food",
}

// DefaultInterests are preselected when a request omits the interests field.
var DefaultInterests = []string{"cafes", "budget-food"}

// POI is a synthetic candidate activity near a destination.
// Values are never mutated once sampled; day plans hold copies.
type POI struct {
	Name          string    `json:"name"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	Category      string    `json:"category"`
	Price         PriceTier `json:"price"`
	DurationHours float64   `json:"duration_hours"`
}

func (p POI) Coordinates() Coordinates { return Coordinates{Lat: p.Lat, Lon: p.Lon} }

// IsInterestOption reports whether s belongs to InterestOptions.
func IsInterestOption(s string) bool {
	for _, o := range InterestOptions {
		if o == s {
			return true
		}
	}
	return false
}
