package models

// LocationQuery is a geofenced search area around a coordinate
type LocationQuery struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// OverpassResponse is the top-level Overpass API payload
type OverpassResponse struct {
	Elements []OverpassElement `json:"elements"`
}

// OverpassElement is a raw OSM record: a node carries lat/lon directly,
// ways and relations carry a center coordinate instead
type OverpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *LatLon           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
