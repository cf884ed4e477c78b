package domain

// Immutable geographic coordinates (WGS84 degrees).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Return coordinates as [lon, lat] for GeoJSON and ORS compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Return coordinates as [lat, lon], the order map widgets and prompts use.
func (c Coordinates) LatLon() [2]float64 { return [2]float64{c.Lat, c.Lon} }
