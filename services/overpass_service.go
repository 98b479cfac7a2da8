package services

import (
	"DineWheel/config/environment"
	"DineWheel/models"
	"DineWheel/utils"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// metersPerMile must match the query semantics of the external geodata
// service exactly, do not round
const metersPerMile = 1609.34

const (
	amenityTag        = "amenity"
	amenityValue      = "restaurant"
	priceTag          = "price"
	currencySymbol    = "$"
	defaultPriceLevel = 2
	minPriceLevel     = 1
	maxPriceLevel     = 4
	mapZoomLevel      = 18
)

// OverpassService fetches raw restaurant records from the Overpass API
type OverpassService struct {
	Endpoint   string
	HTTPClient *http.Client
}

// NewOverpassService creates a new instance of OverpassService
func NewOverpassService() *OverpassService {
	return &OverpassService{
		Endpoint:   environment.GetOverpassURL(),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// BuildLocationQuery converts a coordinate plus a radius in miles into the
// geofenced query area the external service expects
func BuildLocationQuery(latitude, longitude, searchRadiusMiles float64) models.LocationQuery {
	return models.LocationQuery{
		Latitude:     latitude,
		Longitude:    longitude,
		RadiusMeters: searchRadiusMiles * metersPerMile,
	}
}

// BuildOverpassQuery serializes the query area into Overpass QL requesting
// restaurant nodes, ways and relations. "out center" makes ways and
// relations carry a center coordinate.
func BuildOverpassQuery(query models.LocationQuery) string {
	around := fmt.Sprintf("(around:%.2f,%.6f,%.6f)", query.RadiusMeters, query.Latitude, query.Longitude)
	selector := fmt.Sprintf("[%q=%q]", amenityTag, amenityValue)
	return fmt.Sprintf("[out:json];(node%[1]s%[2]s;way%[1]s%[2]s;relation%[1]s%[2]s;);out center;", selector, around)
}

// FetchPlaces posts the serialized query to the Overpass endpoint and
// decodes the raw elements
func (s *OverpassService) FetchPlaces(ctx context.Context, query models.LocationQuery) ([]models.OverpassElement, error) {
	form := url.Values{}
	form.Set("data", BuildOverpassQuery(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error building Overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		log.Printf("Error reaching Overpass API: %v", err)
		return nil, utils.NewCustomError(http.StatusBadGateway, "Failed to reach geodata service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("Overpass API returned status %d: %s", resp.StatusCode, string(body))
		return nil, utils.NewCustomError(http.StatusBadGateway, fmt.Sprintf("Geodata service returned status %d", resp.StatusCode))
	}

	var result models.OverpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, utils.NewCustomError(http.StatusBadGateway, "Failed to parse geodata response")
	}

	log.Printf("Fetched %d raw elements near (%.6f, %.6f)", len(result.Elements), query.Latitude, query.Longitude)
	return result.Elements, nil
}

// NormalizeElements maps raw Overpass elements into candidates. Elements
// without the restaurant amenity tag or without a name are unusable for
// display and dropped silently.
func NormalizeElements(elements []models.OverpassElement, searchRadiusMiles float64) []models.Candidate {
	candidates := make([]models.Candidate, 0, len(elements))

	for _, element := range elements {
		if element.Tags[amenityTag] != amenityValue {
			continue
		}
		name := element.Tags["name"]
		if name == "" {
			continue
		}

		// Ways and relations carry a center coordinate instead of a point
		lat, lon := element.Lat, element.Lon
		if element.Center != nil {
			lat, lon = element.Center.Lat, element.Center.Lon
		}

		candidates = append(candidates, models.Candidate{
			Name: name,
			// Reflects the search radius used, not the true distance
			DistanceMiles: fmt.Sprintf("%.1f", searchRadiusMiles),
			PriceLevel:    priceLevelFromTags(element.Tags),
			Location:      models.GeoLocation{Latitude: lat, Longitude: lon},
			OSMID:         element.ID,
			OSMType:       element.Type,
			OSMURL:        fmt.Sprintf("https://www.openstreetmap.org/%s/%d", element.Type, element.ID),
			MapURL:        fmt.Sprintf("https://www.openstreetmap.org/?mlat=%f&mlon=%f#map=%d/%f/%f", lat, lon, mapZoomLevel, lat, lon),
		})
	}

	return candidates
}

// priceLevelFromTags derives a price level from the price tag: a run of
// currency symbols counts symbols, a plain number parses directly, and
// anything else falls back to the default. The result is always clamped
// to the valid range so no record is rejected for a malformed tag.
func priceLevelFromTags(tags map[string]string) int {
	level := defaultPriceLevel

	if raw, ok := tags[priceTag]; ok {
		if count := strings.Count(raw, currencySymbol); count > 0 {
			level = count
		} else if parsed, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			level = parsed
		}
	}

	if level < minPriceLevel {
		level = minPriceLevel
	}
	if level > maxPriceLevel {
		level = maxPriceLevel
	}
	return level
}
