package models

// Candidate is a normalized restaurant ready for the wheel
type Candidate struct {
	Name          string      `json:"name"`
	DistanceMiles string      `json:"distance_miles"`
	PriceLevel    int         `json:"price_level"`
	Location      GeoLocation `json:"location"`
	OSMID         int64       `json:"osm_id"`
	OSMType       string      `json:"osm_type"`
	OSMURL        string      `json:"osm_url"`
	MapURL        string      `json:"map_url"`
}

type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WheelOption is the projection of a candidate shown on the wheel
type WheelOption struct {
	Name   string `json:"name"`
	MapURL string `json:"map_url"`
}

// WheelState holds the current wheel options, never more than eight
type WheelState struct {
	Options []WheelOption `json:"options"`
}
